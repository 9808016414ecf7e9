package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/admitly/lead-capture-api/internal/entity"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
)

var (
	adminEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercasePattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
)

type AuthHandler struct {
	Admins      entity.AdminRepositoryInterface
	Tokens      *middleware.TokenManager
	rateLimiter *RateLimiter
}

func NewAuthHandler(admins entity.AdminRepositoryInterface, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{
		Admins:      admins,
		Tokens:      tokens,
		rateLimiter: NewRateLimiter(5, 15*time.Minute), // 5 attempts/15min per IP
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string                 `json:"token"`
	User  map[string]interface{} `json:"user"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts, please try again later.")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	admin, err := h.Admins.FindActiveByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("[AUTH] login lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if admin == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		log.Printf("[AUTH] token generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := h.Admins.TouchLastLogin(r.Context(), admin.ID); err != nil {
		log.Printf("[AUTH] updating last_login: %v", err)
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
			"role":  "admin",
		},
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// HandleRegister creates another admin account. The route is mounted
// behind RequireAdmin, so only an authenticated admin reaches it.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}
	if !adminEmailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if !uppercasePattern.MatchString(req.Password) {
		writeError(w, http.StatusBadRequest, "Password must contain at least one uppercase letter")
		return
	}
	if !digitPattern.MatchString(req.Password) {
		writeError(w, http.StatusBadRequest, "Password must contain at least one number")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name != "" && len(name) < 2 {
		writeError(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if name == "" {
		name = req.Email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		log.Printf("[AUTH] hashing password: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	admin := &entity.Admin{
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Name:         name,
	}

	if err := h.Admins.Create(r.Context(), admin); err != nil {
		if errors.Is(err, entity.ErrDuplicateAdminEmail) {
			writeError(w, http.StatusConflict, "Admin email already exists")
			return
		}
		log.Printf("[AUTH] creating admin: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}
