package sheets

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/admitly/lead-capture-api/internal/entity"
)

var ErrNotConfigured = errors.New("sheets: client not configured")

// Fixed column layout, A through J. Column H is the status column, the
// only cell ever rewritten after the initial append.
const (
	appendRange = "Sheet1!A:J"
)

var updatedRangePattern = regexp.MustCompile(`Sheet1!A(\d+):J\d+`)

func leadRowValues(lead *entity.Lead) []interface{} {
	return []interface{}{
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Course,
		lead.College,
		lead.Year,
		string(lead.Status),
		lead.CreatedAt.UTC().Format(time.RFC3339),
		"No", // reminder flag, managed outside this system
	}
}

func statusCellRange(row int) string {
	return fmt.Sprintf("Sheet1!H%d", row)
}

// parseRowRef extracts the 1-based row position from an append
// response's updated range, e.g. "Sheet1!A5:J5" -> 5.
func parseRowRef(updatedRange string) (int, error) {
	if updatedRange == "" {
		return 0, fmt.Errorf("append response carried no updated range")
	}

	match := updatedRangePattern.FindStringSubmatch(updatedRange)
	if match == nil {
		return 0, fmt.Errorf("unexpected updated range %q", updatedRange)
	}

	row, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("unexpected updated range %q", updatedRange)
	}

	return row, nil
}
