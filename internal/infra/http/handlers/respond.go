package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/admitly/lead-capture-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// domainStatus maps usecase errors to response codes; anything that is
// not a domain error is an internal failure.
func domainStatus(err error) int {
	domainErr, ok := err.(*usecase.DomainError)
	if !ok {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case "VALIDATION_ERROR", "INVALID_STATUS":
		return http.StatusBadRequest
	case "EMAIL_ALREADY_REGISTERED":
		return http.StatusConflict
	case "LEAD_NOT_FOUND":
		return http.StatusNotFound
	case "SHEET_UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
