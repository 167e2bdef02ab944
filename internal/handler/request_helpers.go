package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/logger"
)

// HeaderOperatorID carries the operator's identity, validated by the
// upstream gateway before requests reach this service.
const HeaderOperatorID = "X-Operator-ID"

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and the
// handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// URLParamUUID parses a UUID path parameter. If ok is false, the error
// response has already been written.
func URLParamUUID(r *http.Request, w http.ResponseWriter, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid UUID path parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// OperatorID extracts the authenticated operator's id from the request
// headers. If ok is false, the error response has already been written.
func OperatorID(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	raw := r.Header.Get(HeaderOperatorID)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Missing or malformed operator header", "has_header", raw != "")
		respondError(w, http.StatusBadRequest, ErrMsgMissingOperatorHeader)
		return uuid.Nil, false
	}
	return id, true
}
