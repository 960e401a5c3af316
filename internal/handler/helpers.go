package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleServiceError maps domain errors to HTTP responses. Every failure
// resolves to a displayable message; nothing is swallowed.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var validation *domain.ErrValidation
	var httpErr *domain.ErrHTTP
	var network *domain.ErrNetwork
	var notFound *domain.ErrNotFound
	var unauthorized *domain.ErrUnauthorized
	var circuitOpen *domain.ErrCircuitOpen
	var parse *domain.ErrParse

	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &unauthorized):
		writeError(w, http.StatusUnauthorized, unauthorized.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &httpErr):
		// The remote's own status and server-authored message, verbatim.
		writeError(w, httpErr.Status, httpErr.Message)
	case errors.As(err, &circuitOpen):
		writeError(w, http.StatusServiceUnavailable, "The banking service is temporarily unavailable. Please try again shortly.")
	case errors.As(err, &network):
		writeError(w, http.StatusBadGateway, "Network error")
	case errors.As(err, &parse):
		writeError(w, http.StatusBadGateway, "The banking service returned an unexpected response.")
	default:
		logger.Error("unhandled service error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred")
	}
}
