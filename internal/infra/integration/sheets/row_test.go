package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/admitly/lead-capture-api/internal/entity"
)

func TestParseRowRef(t *testing.T) {
	row, err := parseRowRef("Sheet1!A5:J5")
	assert.NoError(t, err)
	assert.Equal(t, 5, row)

	row, err = parseRowRef("Sheet1!A1234:J1234")
	assert.NoError(t, err)
	assert.Equal(t, 1234, row)
}

func TestParseRowRef_HardFailureWithoutRange(t *testing.T) {
	_, err := parseRowRef("")
	assert.Error(t, err)

	_, err = parseRowRef("Sheet2!B2:C2")
	assert.Error(t, err)
}

func TestLeadRowValues_FixedColumnLayout(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	lead := &entity.Lead{
		ID:        42,
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Course:    "B.Tech",
		College:   "XYZ",
		Year:      "2nd Year",
		Status:    entity.StatusNew,
		CreatedAt: createdAt,
	}

	values := leadRowValues(lead)

	assert.Equal(t, []interface{}{
		42,
		"Asha Rao",
		"asha@example.com",
		"9876543210",
		"B.Tech",
		"XYZ",
		"2nd Year",
		"new",
		"2024-03-01T10:30:00Z",
		"No",
	}, values)
}

func TestStatusCellRange(t *testing.T) {
	assert.Equal(t, "Sheet1!H5", statusCellRange(5))
}

func TestUnconfiguredClientReportsUnavailable(t *testing.T) {
	client := &Client{}

	assert.False(t, client.IsAvailable())

	_, err := client.AppendLeadRow(context.Background(), &entity.Lead{ID: 1})
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = client.UpdateStatusCell(context.Background(), 5, entity.StatusNew)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
