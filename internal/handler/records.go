package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kioskworks/roulette-go/internal/draw"
	"github.com/kioskworks/roulette-go/internal/export"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/roulette"
)

// RecordsHandler serves the draw history, as JSON and as a CSV download
type RecordsHandler struct {
	drawSvc     draw.Service
	rouletteSvc roulette.Service
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(drawSvc draw.Service, rouletteSvc roulette.Service) *RecordsHandler {
	return &RecordsHandler{
		drawSvc:     drawSvc,
		rouletteSvc: rouletteSvc,
	}
}

// HandleList returns a roulette's draw records, newest first
// @Summary List draw records
// @Tags records
// @Produce json
// @Param id path string true "Roulette ID"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} domain.DrawRecord
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id}/records [get]
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.drawSvc.GetDrawRecords(r.Context(), rouletteID, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetRecordsFailed, "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// HandleExport streams a roulette's full draw history as CSV
// @Summary Export draw records as CSV
// @Description The file starts with a UTF-8 BOM so spreadsheet tools render non-ASCII prize names
// @Tags records
// @Produce text/csv
// @Param id path string true "Roulette ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} ErrorResponse
// @Router /roulettes/{id}/records/export [get]
func (h *RecordsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := URLParamUUID(r, w, "id")
	if !ok {
		return
	}

	got, err := h.rouletteSvc.GetByID(r.Context(), rouletteID)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	records, err := h.drawSvc.GetDrawRecords(r.Context(), rouletteID, draw.MaxRecordsPageSize)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "rouletteID", rouletteID, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	filename := export.Filename(got.Name, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteDrawRecordsCSV(w, records); err != nil {
		// Headers already sent; nothing useful left to tell the client.
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "rouletteID", rouletteID, "error", err)
	}
}
