// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lernquiz/backend/internal/leaderboard"
	"github.com/lernquiz/backend/internal/loader"
	"github.com/lernquiz/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.SessionService
	catalog  *loader.Catalog
	board    leaderboard.Board
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies. The board may
// be nil when no leaderboard backend is configured.
func NewHandler(sessions *service.SessionService, catalog *loader.Catalog, board leaderboard.Board, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		catalog:  catalog,
		board:    board,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// playerPath extracts and validates the player path segment. On failure it
// writes a 400 and returns false.
func playerPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	player := strings.TrimSpace(r.PathValue("player"))
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return "", false
	}
	return player, true
}

// handleServiceError maps known session errors to HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, loader.ErrNotFound):
		respondError(w, http.StatusNotFound, "dataset not found")
	case errors.Is(err, service.ErrStale):
		respondError(w, http.StatusConflict, "question is no longer current, reload the session")
	case errors.Is(err, service.ErrNoMissed):
		respondError(w, http.StatusConflict, "no missed questions to review")
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
