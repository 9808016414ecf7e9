// Package sheets mirrors leads into a Google Sheet. The client is a
// thin capability wrapper: when no spreadsheet or credentials are
// configured every operation reports unavailability instead of failing
// the caller.
package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/admitly/lead-capture-api/internal/entity"
)

type Config struct {
	SpreadsheetID   string
	CredentialsFile string
}

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient builds the wrapper. Missing configuration is not an error:
// it yields a client whose IsAvailable reports false, so the rest of
// the system runs with sync disabled.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" || cfg.CredentialsFile == "" {
		log.Println("[SHEETS] spreadsheet not configured, sync disabled")
		return &Client{}, nil
	}

	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func (c *Client) IsAvailable() bool {
	return c.svc != nil
}

// AppendLeadRow appends one row to Sheet1!A:J and returns the 1-based
// row position parsed from the service's updated range. A response
// without a parseable range is a hard failure for this attempt.
func (c *Client) AppendLeadRow(ctx context.Context, lead *entity.Lead) (int, error) {
	if !c.IsAvailable() {
		return 0, ErrNotConfigured
	}

	values := &gsheets.ValueRange{
		Values: [][]interface{}{leadRowValues(lead)},
	}

	resp, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, appendRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("append to spreadsheet: %w", err)
	}

	if resp.Updates == nil {
		return 0, fmt.Errorf("append response carried no updates")
	}

	row, err := parseRowRef(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, err
	}

	return row, nil
}

// UpdateStatusCell rewrites exactly one cell: the status column of the
// given row.
func (c *Client) UpdateStatusCell(ctx context.Context, row int, status entity.LeadStatus) error {
	if !c.IsAvailable() {
		return ErrNotConfigured
	}

	values := &gsheets.ValueRange{
		Values: [][]interface{}{{string(status)}},
	}

	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, statusCellRange(row), values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update status cell: %w", err)
	}

	return nil
}
