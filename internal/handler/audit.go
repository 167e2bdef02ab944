package handler

import (
	"net/http"
	"strconv"

	"github.com/kioskworks/roulette-go/internal/audit"
	"github.com/kioskworks/roulette-go/internal/logger"
)

// AuditHandler serves the management audit trail
type AuditHandler struct {
	svc audit.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// HandleList returns a roulette's audit trail, newest first
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Param id path string true "Roulette ID"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} domain.AuditLog
// @Failure 400 {object} ErrorResponse
// @Router /roulettes/{id}/audit [get]
func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}
		limit = parsed
	}

	entries, err := h.svc.List(r.Context(), rouletteID, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to get audit logs", "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
