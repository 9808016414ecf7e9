package entity

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateAdminEmail = errors.New("admin email already exists")

type Admin struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type AdminRepositoryInterface interface {
	Create(ctx context.Context, admin *Admin) error
	FindActiveByEmail(ctx context.Context, email string) (*Admin, error)
	TouchLastLogin(ctx context.Context, id int) error
}
