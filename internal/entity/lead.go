package entity

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrDuplicateEmail = errors.New("email already registered")

type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost:
		return true
	}
	return false
}

// SheetRow is the lead's link to its mirrored spreadsheet row.
// Valid == false means the lead was never appended to the sheet.
// Once Valid, the row number is never cleared or reassigned.
type SheetRow struct {
	Number int
	Valid  bool
}

func SyncedRow(n int) SheetRow {
	return SheetRow{Number: n, Valid: true}
}

func (s SheetRow) Synced() bool {
	return s.Valid
}

func (s *SheetRow) Scan(value interface{}) error {
	if value == nil {
		*s = SheetRow{}
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SheetRow{Number: int(v), Valid: true}
		return nil
	default:
		return fmt.Errorf("sheet row: cannot scan %T", value)
	}
}

func (s SheetRow) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return int64(s.Number), nil
}

func (s SheetRow) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Number)
}

func (s *SheetRow) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = SheetRow{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = SheetRow{Number: n, Valid: true}
	return nil
}

type Lead struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Course       string     `json:"course"`
	College      string     `json:"college"`
	Year         string     `json:"year"`
	Status       LeadStatus `json:"status"`
	SheetRow     SheetRow   `json:"sheet_row_id"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LeadFilter narrows List/Count. Course and Search are case-insensitive
// substring matches; Search covers name and email.
type LeadFilter struct {
	Status LeadStatus
	Course string
	Search string
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id int) (*Lead, error)
	List(ctx context.Context, filter LeadFilter, offset, limit int) ([]Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int, error)
	UpdateStatus(ctx context.Context, id int, status LeadStatus) (*Lead, error)
	Delete(ctx context.Context, id int) (bool, error)

	// SetSheetRow stamps the row reference exactly once; it reports
	// false when another writer already claimed the lead.
	SetSheetRow(ctx context.Context, id, row int) (bool, error)
	ListUnsynced(ctx context.Context, limit int) ([]Lead, error)
}
