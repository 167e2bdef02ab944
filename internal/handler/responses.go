package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors. These intentionally hide
// internal detail; operators see enough to act, no more.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgRouletteNotFoundError  = "Roulette not found"
	ErrMsgRouletteNotActiveError = "Roulette is not accepting draws right now"
	ErrMsgInvalidTransitionError = "That status change is not allowed"
	ErrMsgPrizeNotFoundError     = "Prize not found"
	ErrMsgInvalidWeightError     = "Prize weight must not be negative"
	ErrMsgInvalidStockError      = "Prize stock must not be negative"
	ErrMsgDeviceLockedError      = "This roulette is already in use on another device"
	ErrMsgNoActiveSessionError   = "Activate the roulette on this device before drawing"
	ErrMsgDrawConflictError      = "This draw is still being processed. Please retry"
	ErrMsgRecordNotFoundError    = "Draw record not found"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// operator-facing messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRouletteNotFound):
		return http.StatusNotFound, ErrMsgRouletteNotFoundError
	case errors.Is(err, domain.ErrPrizeNotFound):
		return http.StatusNotFound, ErrMsgPrizeNotFoundError
	case errors.Is(err, domain.ErrDrawRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrRouletteNotActive):
		return http.StatusConflict, ErrMsgRouletteNotActiveError
	case errors.Is(err, domain.ErrDeviceLocked):
		return http.StatusConflict, ErrMsgDeviceLockedError
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusConflict, ErrMsgNoActiveSessionError
	case errors.Is(err, domain.ErrSessionConflict):
		return http.StatusConflict, ErrMsgDeviceLockedError
	case errors.Is(err, domain.ErrDuplicateIdempotencyKey):
		return http.StatusConflict, ErrMsgDrawConflictError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, ErrMsgInvalidTransitionError
	case errors.Is(err, domain.ErrInvalidWeight):
		return http.StatusBadRequest, ErrMsgInvalidWeightError
	case errors.Is(err, domain.ErrInvalidStock):
		return http.StatusBadRequest, ErrMsgInvalidStockError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
