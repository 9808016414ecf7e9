package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/admitly/lead-capture-api/internal/entity"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (email, password_hash, name, is_active)
		VALUES (LOWER($1), $2, $3, true)
		RETURNING id, email, is_active, created_at
	`

	err := r.DB.QueryRowContext(ctx, query, admin.Email, admin.PasswordHash, admin.Name).Scan(
		&admin.ID,
		&admin.Email,
		&admin.IsActive,
		&admin.CreatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entity.ErrDuplicateAdminEmail
	}

	return err
}

func (r *AdminRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password_hash, COALESCE(name, ''), is_active, created_at, last_login
		FROM admins
		WHERE LOWER(email) = LOWER($1) AND is_active = true
	`

	var admin entity.Admin
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.LastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE admins SET last_login = NOW() WHERE id = $1", id)
	return err
}
