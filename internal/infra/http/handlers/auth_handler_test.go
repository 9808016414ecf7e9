package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/admitly/lead-capture-api/internal/entity"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
)

type stubAdminRepo struct {
	entity.AdminRepositoryInterface
	createFn func(ctx context.Context, admin *entity.Admin) error
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	return s.createFn(ctx, admin)
}

func registerReq(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
}

func newAuthHandler(repo entity.AdminRepositoryInterface) *AuthHandler {
	return NewAuthHandler(repo, middleware.NewTokenManager("test-secret", time.Hour))
}

func TestHandleRegister_CreatesAdmin(t *testing.T) {
	var created *entity.Admin
	repo := &stubAdminRepo{createFn: func(_ context.Context, admin *entity.Admin) error {
		admin.ID = 2
		created = admin
		return nil
	}}
	handler := newAuthHandler(repo)

	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, registerReq(`{"email": "New.Admin@Example.com", "password": "Sup3rsecret", "name": "New Admin"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin created successfully")

	require.NotNil(t, created)
	assert.Equal(t, "new.admin@example.com", created.Email)
	assert.Equal(t, "New Admin", created.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Sup3rsecret")))
	// the hash never leaks into the response
	assert.NotContains(t, rec.Body.String(), created.PasswordHash)
}

func TestHandleRegister_NameDefaultsToEmail(t *testing.T) {
	var created *entity.Admin
	repo := &stubAdminRepo{createFn: func(_ context.Context, admin *entity.Admin) error {
		created = admin
		return nil
	}}
	handler := newAuthHandler(repo)

	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, registerReq(`{"email": "ops@example.com", "password": "Sup3rsecret"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, "ops@example.com", created.Name)
}

func TestHandleRegister_RejectsWeakInput(t *testing.T) {
	handler := newAuthHandler(&stubAdminRepo{createFn: func(context.Context, *entity.Admin) error {
		t.Fatal("rejected input must not reach the repository")
		return nil
	}})

	cases := []struct {
		body string
		want string
	}{
		{`{"email": "", "password": "Sup3rsecret"}`, "Email and password required"},
		{`{"email": "not an email", "password": "Sup3rsecret"}`, "Invalid email format"},
		{`{"email": "a@b.co", "password": "Sh0rt"}`, "at least 8 characters"},
		{`{"email": "a@b.co", "password": "nouppercase1"}`, "uppercase letter"},
		{`{"email": "a@b.co", "password": "NoDigitsHere"}`, "at least one number"},
		{`{"email": "a@b.co", "password": "Sup3rsecret", "name": "x"}`, "at least 2 characters"},
	}

	for i, tc := range cases {
		rec := httptest.NewRecorder()
		handler.HandleRegister(rec, registerReq(tc.body))

		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("case %d", i+1))
		assert.Contains(t, rec.Body.String(), tc.want, fmt.Sprintf("case %d", i+1))
	}
}

func TestHandleRegister_DuplicateEmailConflicts(t *testing.T) {
	repo := &stubAdminRepo{createFn: func(context.Context, *entity.Admin) error {
		return entity.ErrDuplicateAdminEmail
	}}
	handler := newAuthHandler(repo)

	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, registerReq(`{"email": "dup@example.com", "password": "Sup3rsecret"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin email already exists")
}

func TestHandleRegister_RequiresAdminToken(t *testing.T) {
	tokens := middleware.NewTokenManager("test-secret", time.Hour)
	handler := NewAuthHandler(&stubAdminRepo{createFn: func(_ context.Context, admin *entity.Admin) error {
		return nil
	}}, tokens)

	guarded := tokens.RequireAdmin(http.HandlerFunc(handler.HandleRegister))

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, registerReq(`{"email": "a@b.co", "password": "Sup3rsecret"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := tokens.Generate(1, "root@example.com")
	require.NoError(t, err)

	req := registerReq(`{"email": "a@b.co", "password": "Sup3rsecret"}`)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
