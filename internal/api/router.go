// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all API endpoints onto the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Datasets and questions
	mux.HandleFunc("GET /datasets", h.listDatasets)
	mux.HandleFunc("GET /datasets/{datasetID}/questions", h.listQuestions)
	mux.HandleFunc("POST /datasets/{datasetID}/questions", h.addQuestion)

	// Session
	mux.HandleFunc("GET /datasets/{datasetID}/players/{player}/session", h.getSession)
	mux.HandleFunc("POST /datasets/{datasetID}/players/{player}/answers", h.submitAnswer)
	mux.HandleFunc("POST /datasets/{datasetID}/players/{player}/navigate", h.navigate)
	mux.HandleFunc("POST /datasets/{datasetID}/players/{player}/reset", h.resetSession)

	// Focus review
	mux.HandleFunc("POST /datasets/{datasetID}/players/{player}/focus", h.enterFocus)
	mux.HandleFunc("POST /datasets/{datasetID}/players/{player}/focus/restart", h.restartFocus)
	mux.HandleFunc("DELETE /datasets/{datasetID}/players/{player}/focus", h.exitFocus)

	// Export
	mux.HandleFunc("GET /datasets/{datasetID}/players/{player}/missed/export.csv", h.exportCSV)
	mux.HandleFunc("GET /datasets/{datasetID}/players/{player}/missed/export.pdf", h.exportPDF)

	// Leaderboard
	mux.HandleFunc("GET /leaderboard/today", h.leaderboardToday)
	mux.HandleFunc("GET /leaderboard/total", h.leaderboardTotal)
}
