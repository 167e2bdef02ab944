package handler

import (
	"errors"
	"net/http"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/draw"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/metrics"
	"github.com/kioskworks/roulette-go/internal/session"
)

// DrawHandler serves the kiosk-facing endpoints: session activation and draws
type DrawHandler struct {
	drawSvc    draw.Service
	sessionSvc session.Service
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawSvc draw.Service, sessionSvc session.Service) *DrawHandler {
	return &DrawHandler{
		drawSvc:    drawSvc,
		sessionSvc: sessionSvc,
	}
}

type ActivateRequest struct {
	DeviceInfo string `json:"deviceInfo" validate:"max=256"`
}

type ActivateResponse struct {
	SessionID  string `json:"sessionId"`
	RouletteID string `json:"rouletteId"`
}

// HandleActivate acquires the device lock on a roulette
// @Summary Activate a roulette for this device
// @Description Acquires the exclusive session lock; idempotent for repeat activations from the same device
// @Tags draw
// @Accept json
// @Produce json
// @Param id path string true "Roulette ID"
// @Success 200 {object} ActivateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /roulettes/{id}/activate [post]
func (h *DrawHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req ActivateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Activate roulette"); err != nil {
		return
	}

	sess, err := h.sessionSvc.Activate(r.Context(), rouletteID, operatorID, req.DeviceInfo)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceLocked) {
			metrics.DeviceLockConflicts.Inc()
		}
		logger.FromContext(r.Context()).Error(ErrMsgActivateFailed, "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.SessionsActivated.Inc()
	respondJSON(w, http.StatusOK, ActivateResponse{
		SessionID:  sess.ID.String(),
		RouletteID: sess.RouletteID.String(),
	})
}

type DrawRequest struct {
	IdempotencyKey string `json:"idempotencyKey" validate:"required,max=128"`
	DeviceInfo     string `json:"deviceInfo" validate:"max=256"`
}

// HandleDraw performs one draw for the caller's active session
// @Summary Perform a draw
// @Description Runs one atomic weighted draw; retrying with the same idempotency key replays the outcome
// @Tags draw
// @Accept json
// @Produce json
// @Param id path string true "Roulette ID"
// @Param lang query string false "Result language (en, zh)"
// @Success 200 {object} domain.DrawResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /roulettes/{id}/draw [post]
func (h *DrawHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req DrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Perform draw"); err != nil {
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}

	result, err := h.drawSvc.PerformDraw(r.Context(), rouletteID, operatorID, req.DeviceInfo, req.IdempotencyKey, lang)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgDrawFailed, "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleDeactivate releases the device lock
// @Summary Close a session
// @Tags draw
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *DrawHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}

	if err := h.sessionSvc.Close(r.Context(), sessionID); err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "session closed"})
}
