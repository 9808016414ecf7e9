package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate(1, "admin@example.com")
	assert.NoError(t, err)

	claims, err := tm.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Generate(1, "admin@example.com")
	assert.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-ab", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	var seenAdmin *AdminClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAdmin, _ = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	guarded := tm.RequireAdmin(next)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads/all", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads/all", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _ := tm.Generate(3, "admin@example.com")
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/leads/all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, seenAdmin.AdminID)
}
