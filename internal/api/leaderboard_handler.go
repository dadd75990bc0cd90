// internal/api/leaderboard_handler.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lernquiz/backend/internal/leaderboard"
)

const defaultLeaderboardLimit = 20

// leaderboardToday shows today's standings.
// @Summary      Today's leaderboard
// @Description  Ranks players by today's correct answers. Ties break on fewer wrong, then fewer skipped, then name.
// @Tags         Leaderboard
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows (default 20)"
// @Success      200    {array}   leaderboard.Row
// @Failure      500    {object}  map[string]string
// @Failure      503    {object}  map[string]string  "no leaderboard backend configured"
// @Router       /leaderboard/today [get]
func (h *Handler) leaderboardToday(w http.ResponseWriter, r *http.Request) {
	if h.board == nil {
		respondError(w, http.StatusServiceUnavailable, "leaderboard is not configured")
		return
	}
	day := time.Now().Format("2006-01-02")
	rows, err := h.board.TopByDay(r.Context(), day, limitParam(r))
	if err != nil {
		h.logger.Error("leaderboard query", "error", err, "day", day)
		respondError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	if rows == nil {
		rows = []leaderboard.Row{}
	}
	respondJSON(w, http.StatusOK, rows)
}

// leaderboardTotal shows the all-time standings.
// @Summary      Overall leaderboard
// @Description  Ranks players by correct answers summed across all days.
// @Tags         Leaderboard
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows (default 20)"
// @Success      200    {array}   leaderboard.Row
// @Failure      500    {object}  map[string]string
// @Failure      503    {object}  map[string]string  "no leaderboard backend configured"
// @Router       /leaderboard/total [get]
func (h *Handler) leaderboardTotal(w http.ResponseWriter, r *http.Request) {
	if h.board == nil {
		respondError(w, http.StatusServiceUnavailable, "leaderboard is not configured")
		return
	}
	rows, err := h.board.TopOverall(r.Context(), limitParam(r))
	if err != nil {
		h.logger.Error("leaderboard query", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	if rows == nil {
		rows = []leaderboard.Row{}
	}
	respondJSON(w, http.StatusOK, rows)
}

func limitParam(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultLeaderboardLimit
}
