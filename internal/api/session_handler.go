// internal/api/session_handler.go
package api

import (
	"net/http"

	"github.com/lernquiz/backend/internal/domain/progress"
	"github.com/lernquiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	QuestionID int     `json:"question_id"`
	Selected   []int   `json:"selected,omitempty"`
	FreeText   *string `json:"free_text,omitempty"`
	Correct    *bool   `json:"correct,omitempty"`
	Skipped    bool    `json:"skipped,omitempty"`
	Unsure     bool    `json:"unsure,omitempty"`
}

type NavigateRequest struct {
	Delta int `json:"delta,omitempty"`
	// To jumps instead of stepping; the only supported target is
	// "unanswered".
	To string `json:"to,omitempty"`
}

type ResetRequest struct {
	Scope string `json:"scope"` // "cursor", "all" or "reshuffle"
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the player's current position in a dataset.
// @Summary      Get session
// @Description  Returns the current question, cursor and today's stats. First contact creates the state and today's deterministic order.
// @Tags         Session
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	v, err := h.sessions.Current(r.PathValue("datasetID"), player)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// submitAnswer records an answer for the current question.
// @Summary      Submit an answer
// @Description  Records a selection, free text, skip or unsure for the question at the cursor. Choice questions are scored server side.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        datasetID  path      string               true  "Dataset id"
// @Param        player     path      string               true  "Player name"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  service.SubmitResult
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "question no longer current"
// @Router       /datasets/{datasetID}/players/{player}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out := progress.Outcome{
		Correct:  req.Correct,
		Selected: req.Selected,
		FreeText: req.FreeText,
		Skipped:  req.Skipped,
		Unsure:   req.Unsure,
	}
	res, err := h.sessions.Submit(r.PathValue("datasetID"), player, req.QuestionID, out)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// navigate moves the cursor backward or forward.
// @Summary      Navigate
// @Description  Moves the cursor by delta, clamped to the active order, or jumps to the next unanswered question with to=unanswered. Already answered positions show up locked.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        datasetID  path      string           true  "Dataset id"
// @Param        player     path      string           true  "Player name"
// @Param        body       body      NavigateRequest  true  "Cursor movement"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/navigate [post]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var (
		v   service.View
		err error
	)
	switch req.To {
	case "":
		v, err = h.sessions.Navigate(r.PathValue("datasetID"), player, req.Delta)
	case "unanswered":
		v, err = h.sessions.JumpToUnanswered(r.PathValue("datasetID"), player)
	default:
		respondError(w, http.StatusBadRequest, "to must be \"unanswered\" when set")
		return
	}
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// resetSession resets the run at the requested scope.
// @Summary      Reset session
// @Description  Scope "cursor" jumps to the start, "all" wipes the player's state, "reshuffle" clears answers and deals a fresh order while keeping past days' stats.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        datasetID  path      string        true  "Dataset id"
// @Param        player     path      string        true  "Player name"
// @Param        body       body      ResetRequest  true  "Reset scope"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/reset [post]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	var req ResetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	datasetID := r.PathValue("datasetID")
	var (
		v   service.View
		err error
	)
	switch req.Scope {
	case "cursor":
		v, err = h.sessions.ResetCursor(datasetID, player)
	case "all":
		v, err = h.sessions.ResetAll(datasetID, player)
	case "reshuffle":
		v, err = h.sessions.Reshuffle(datasetID, player)
	default:
		respondError(w, http.StatusBadRequest, "scope must be cursor, all or reshuffle")
		return
	}
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// enterFocus starts a review round over the missed questions.
// @Summary      Enter focus review
// @Description  Switches to a round over the wrong, skipped and unsure questions. The normal run's position is saved.
// @Tags         Focus
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "nothing to review"
// @Router       /datasets/{datasetID}/players/{player}/focus [post]
func (h *Handler) enterFocus(w http.ResponseWriter, r *http.Request) {
	h.focusOp(w, r, h.sessions.EnterFocus)
}

// restartFocus rebuilds the focus round from the still-missed questions.
// @Summary      Restart focus review
// @Description  Starts a new round over the questions still missed. Mastered questions drop out.
// @Tags         Focus
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "nothing left to review"
// @Router       /datasets/{datasetID}/players/{player}/focus/restart [post]
func (h *Handler) restartFocus(w http.ResponseWriter, r *http.Request) {
	h.focusOp(w, r, h.sessions.RestartFocus)
}

// exitFocus returns to the normal run.
// @Summary      Exit focus review
// @Description  Returns to the normal run at the saved position.
// @Tags         Focus
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset id"
// @Param        player     path      string  true  "Player name"
// @Success      200        {object}  service.View
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/players/{player}/focus [delete]
func (h *Handler) exitFocus(w http.ResponseWriter, r *http.Request) {
	h.focusOp(w, r, h.sessions.ExitFocus)
}

func (h *Handler) focusOp(w http.ResponseWriter, r *http.Request, op func(datasetID, player string) (service.View, error)) {
	player, ok := playerPath(w, r)
	if !ok {
		return
	}
	v, err := op(r.PathValue("datasetID"), player)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, v)
}
