package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
	"github.com/admitly/lead-capture-api/internal/usecase"
)

// LeadHandler serves the public submission endpoint.
type LeadHandler struct {
	Capture     *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(capture *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Capture:     capture,
		rateLimiter: NewRateLimiter(10, time.Hour), // 10 submissions/hour per IP
	}
}

func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many lead submissions from this IP, please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Capture.Execute(r.Context(), input)
	if err != nil {
		status := domainStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[LEADS] submit failed: %v", err)
			writeError(w, status, "Failed to submit lead")
			return
		}
		writeError(w, status, err.Error())
		return
	}

	middleware.RecordLeadCaptured()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Lead submitted successfully",
		"lead":    lead,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

// Throttle applies the limiter to every request on a route group.
func (rl *RateLimiter) Throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(getClientIP(r)) {
			writeError(w, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
