package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/admitly/lead-capture-api/internal/entity"
)

const leadColumns = "id, name, email, phone, course, college, year, status, sheet_row_id, reminder_sent, created_at, updated_at"

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (name, email, phone, course, college, year, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Course,
		lead.College,
		lead.Year,
		lead.Status,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entity.ErrDuplicateEmail
	}

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads WHERE id = $1", leadColumns)

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter, offset, limit int) ([]entity.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads", leadColumns)
	where, args := buildFilter(filter)
	query += where

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := scanLeadInto(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Count(ctx context.Context, filter entity.LeadFilter) (int, error) {
	query := "SELECT COUNT(*) FROM leads"
	where, args := buildFilter(filter)
	query += where

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int, status entity.LeadStatus) (*entity.Lead, error) {
	query := fmt.Sprintf(`
		UPDATE leads SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, leadColumns)

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, status, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetSheetRow stamps the sheet row once. The IS NULL condition keeps
// the first writer authoritative when a sweep races a direct append.
func (r *LeadRepository) SetSheetRow(ctx context.Context, id, row int) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE leads SET sheet_row_id = $1 WHERE id = $2 AND sheet_row_id IS NULL",
		row, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListUnsynced returns leads with no sheet row, oldest first so the
// sweep bounds staleness.
func (r *LeadRepository) ListUnsynced(ctx context.Context, limit int) ([]entity.Lead, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM leads
		WHERE sheet_row_id IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`, leadColumns)

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := scanLeadInto(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func buildFilter(filter entity.LeadFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Course != "" {
		args = append(args, "%"+filter.Course+"%")
		where += fmt.Sprintf(" AND course ILIKE $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", len(args), len(args))
	}

	return where, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	if err := scanLeadInto(row, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func scanLeadInto(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Course,
		&lead.College,
		&lead.Year,
		&lead.Status,
		&lead.SheetRow,
		&lead.ReminderSent,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
}
