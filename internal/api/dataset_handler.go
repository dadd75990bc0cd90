// internal/api/dataset_handler.go
package api

import (
	"net/http"
	"strings"

	"github.com/lernquiz/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type DatasetSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type QuestionSummary struct {
	ID         int                 `json:"id"`
	Type       question.Type       `json:"type"`
	Text       string              `json:"text"`
	Options    []string            `json:"options,omitempty"`
	AnswerMode question.AnswerMode `json:"answer_mode,omitempty"`
	Source     string              `json:"source,omitempty"`
}

type AddQuestionRequest struct {
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Options     []string `json:"options,omitempty"`
	Correct     []int    `json:"correct,omitempty"`
	AnswerMode  string   `json:"answer_mode,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Solution    string   `json:"solution,omitempty"`
	Hint        string   `json:"hint,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listDatasets lists the selectable question sets.
// @Summary      List datasets
// @Description  Returns every dataset with its question count, custom questions included.
// @Tags         Datasets
// @Produce      json
// @Success      200  {array}   DatasetSummary
// @Failure      500  {object}  map[string]string
// @Router       /datasets [get]
func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.catalog.Datasets()
	if err != nil {
		h.logger.Error("list datasets", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list datasets")
		return
	}

	out := make([]DatasetSummary, 0, len(sets))
	for _, d := range sets {
		out = append(out, DatasetSummary{ID: d.ID, Name: d.Name, QuestionCount: d.QuestionCount})
	}
	respondJSON(w, http.StatusOK, out)
}

// listQuestions lists a dataset's questions without the answer key.
// @Summary      List questions
// @Description  Returns every question of a dataset. Correct answers and explanations are withheld.
// @Tags         Datasets
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset id"
// @Success      200        {array}   QuestionSummary
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.catalog.Load(r.PathValue("datasetID"))
	if h.handleServiceError(w, err) {
		return
	}

	out := make([]QuestionSummary, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionSummary{
			ID:         q.ID,
			Type:       q.Type,
			Text:       q.Text,
			Options:    q.Options,
			AnswerMode: q.AnswerMode,
			Source:     q.Source,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// addQuestion adds a custom question to a dataset.
// @Summary      Add a custom question
// @Description  Appends a user-written question. It receives an id after the dataset's highest and survives dataset updates.
// @Tags         Datasets
// @Accept       json
// @Produce      json
// @Param        datasetID  path      string              true  "Dataset id"
// @Param        body       body      AddQuestionRequest  true  "Question to add"
// @Success      201        {object}  map[string]string
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /datasets/{datasetID}/questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "question text is required")
		return
	}

	q := question.Question{
		Text:        req.Text,
		Explanation: req.Explanation,
		Solution:    req.Solution,
		Hint:        req.Hint,
	}

	switch strings.ToLower(req.Type) {
	case "open", "text":
		q.Type = question.TypeOpen
	default:
		q.Type = question.TypeChoice
	}

	if q.Type == question.TypeChoice {
		if len(req.Options) < 2 {
			respondError(w, http.StatusBadRequest, "choice questions need at least two options")
			return
		}
		if len(req.Correct) == 0 {
			respondError(w, http.StatusBadRequest, "choice questions need at least one correct index")
			return
		}
		for _, idx := range req.Correct {
			if idx < 0 || idx >= len(req.Options) {
				respondError(w, http.StatusBadRequest, "correct index out of range")
				return
			}
		}
		q.Options = req.Options
		q.Correct = req.Correct
		if strings.EqualFold(req.AnswerMode, "multi") || len(req.Correct) > 1 {
			q.AnswerMode = question.ModeMulti
		} else {
			q.AnswerMode = question.ModeSingle
		}
	}

	if err := h.catalog.AddCustom(r.PathValue("datasetID"), q); h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
