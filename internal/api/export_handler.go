// internal/api/export_handler.go
package api

import (
	"fmt"
	"net/http"

	"github.com/lernquiz/backend/internal/export"
)

// exportCSV downloads the missed questions as CSV.
// @Summary      Export missed questions as CSV
// @Description  Returns the wrong, skipped and unsure questions with the given answer, the correct answer and an explanation.
// @Tags         Export
// @Produce      text/csv
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {string}  string  "CSV document"
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/missed/export.csv [get]
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	datasetID := r.PathValue("datasetID")

	rows, err := h.sessions.MissedRows(datasetID, player)
	if h.handleServiceError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "missed_"+datasetID+".csv"))
	if err := export.WriteCSV(w, rows); err != nil {
		h.logger.Error("csv export", "error", err, "dataset", datasetID)
	}
}

// exportPDF downloads the missed questions as PDF.
// @Summary      Export missed questions as PDF
// @Description  Same report as the CSV export, rendered as a printable document.
// @Tags         Export
// @Produce      application/pdf
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {string}  string  "PDF document"
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/missed/export.pdf [get]
func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	datasetID := r.PathValue("datasetID")

	rows, err := h.sessions.MissedRows(datasetID, player)
	if h.handleServiceError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "missed_"+datasetID+".pdf"))
	if err := export.WritePDF(w, player, datasetID, rows); err != nil {
		h.logger.Error("pdf export", "error", err, "dataset", datasetID)
	}
}
