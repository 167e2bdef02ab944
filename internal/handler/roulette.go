package handler

import (
	"net/http"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/roulette"
)

// RouletteHandler serves roulette and prize management endpoints
type RouletteHandler struct {
	svc roulette.Service
}

// NewRouletteHandler creates a new RouletteHandler
func NewRouletteHandler(svc roulette.Service) *RouletteHandler {
	return &RouletteHandler{svc: svc}
}

type CreateRouletteRequest struct {
	Name  string `json:"name" validate:"required,max=128"`
	Theme string `json:"theme" validate:"max=64"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,roulettestatus"`
}

// HandleCreate creates a roulette in DRAFT state
// @Summary Create a roulette
// @Tags roulette
// @Accept json
// @Produce json
// @Success 201 {object} domain.Roulette
// @Failure 400 {object} ErrorResponse
// @Router /roulettes [post]
func (h *RouletteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req CreateRouletteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create roulette"); err != nil {
		return
	}

	created, err := h.svc.Create(r.Context(), operatorID, req.Name, req.Theme)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create roulette", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleList lists all roulettes
// @Summary List roulettes
// @Tags roulette
// @Produce json
// @Success 200 {array} domain.Roulette
// @Router /roulettes [get]
func (h *RouletteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roulettes, err := h.svc.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list roulettes", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, roulettes)
}

// HandleGet returns one roulette with its prizes
// @Summary Get a roulette
// @Tags roulette
// @Produce json
// @Param id path string true "Roulette ID"
// @Success 200 {object} domain.Roulette
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id} [get]
func (h *RouletteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}

	got, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, got)
}

// HandleUpdateStatus transitions a roulette through its lifecycle
// @Summary Update roulette status
// @Tags roulette
// @Accept json
// @Produce json
// @Param id path string true "Roulette ID"
// @Success 200 {object} domain.Roulette
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id}/status [patch]
func (h *RouletteHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update roulette status"); err != nil {
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), operatorID, id, domain.RouletteStatus(req.Status))
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to update roulette status",
			"rouletteID", id, "status", req.Status, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleDelete removes a roulette and everything under it
// @Summary Delete a roulette
// @Tags roulette
// @Produce json
// @Param id path string true "Roulette ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id} [delete]
func (h *RouletteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), operatorID, id); err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "roulette deleted"})
}

type PrizeRequest struct {
	Name       string `json:"name" validate:"required,max=128"`
	WinMessage string `json:"winMessage" validate:"max=256"`
	Weight     int    `json:"weight" validate:"gte=0"`
	Stock      *int   `json:"stock" validate:"omitempty,gte=0"`
}

func (p PrizeRequest) toInput() roulette.PrizeInput {
	return roulette.PrizeInput{
		Name:       p.Name,
		WinMessage: p.WinMessage,
		Weight:     p.Weight,
		Stock:      p.Stock,
	}
}

// HandleAddPrize adds a prize to a roulette
// @Summary Add a prize
// @Tags prize
// @Accept json
// @Produce json
// @Param id path string true "Roulette ID"
// @Success 201 {object} domain.Prize
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id}/prizes [post]
func (h *RouletteHandler) HandleAddPrize(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req PrizeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add prize"); err != nil {
		return
	}

	created, err := h.svc.AddPrize(r.Context(), operatorID, rouletteID, req.toInput())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to add prize", "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleUpdatePrize replaces a prize's fields
// @Summary Update a prize
// @Tags prize
// @Accept json
// @Produce json
// @Param prizeId path string true "Prize ID"
// @Success 200 {object} domain.Prize
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prizes/{prizeId} [patch]
func (h *RouletteHandler) HandleUpdatePrize(w http.ResponseWriter, r *http.Request) {
	prizeID, ok := URLParamUUID(r, w, "prizeId")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	var req PrizeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update prize"); err != nil {
		return
	}

	updated, err := h.svc.UpdatePrize(r.Context(), operatorID, prizeID, req.toInput())
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleDeletePrize removes a prize
// @Summary Delete a prize
// @Tags prize
// @Produce json
// @Param prizeId path string true "Prize ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /prizes/{prizeId} [delete]
func (h *RouletteHandler) HandleDeletePrize(w http.ResponseWriter, r *http.Request) {
	prizeID, ok := URLParamUUID(r, w, "prizeId")
	if !ok {
		return
	}
	operatorID, ok := OperatorID(r, w)
	if !ok {
		return
	}

	if err := h.svc.DeletePrize(r.Context(), operatorID, prizeID); err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "prize deleted"})
}
