// internal/service/session.go
package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lernquiz/backend/internal/domain/progress"
	"github.com/lernquiz/backend/internal/domain/question"
	"github.com/lernquiz/backend/internal/key"
	"github.com/lernquiz/backend/internal/leaderboard"
	"github.com/lernquiz/backend/internal/loader"
	"github.com/lernquiz/backend/internal/store"
)

var (
	// ErrStale means the submitted question is not the one at the cursor,
	// usually because another tab advanced the session.
	ErrStale = errors.New("question is not the current one")

	// ErrNoMissed means focus review was requested but nothing qualifies.
	ErrNoMissed = errors.New("no missed questions to review")
)

// QuestionView is a question as shown to the player, without the fields
// that would give the answer away.
type QuestionView struct {
	ID         int                 `json:"id"`
	Type       question.Type       `json:"type"`
	Text       string              `json:"text"`
	Options    []string            `json:"options,omitempty"`
	AnswerMode question.AnswerMode `json:"answer_mode,omitempty"`
	Hint       string              `json:"hint,omitempty"`
	Source     string              `json:"source,omitempty"`
	Locked     bool                `json:"locked"`
}

// View is one snapshot of a player's run through a dataset.
type View struct {
	Player   string                 `json:"player"`
	Dataset  string                 `json:"dataset"`
	Day      string                 `json:"day"`
	Mode     progress.TraversalMode `json:"mode"`
	Cursor   int                    `json:"cursor"`
	Total    int                    `json:"total"`
	Finished bool                   `json:"finished"`
	Question *QuestionView          `json:"question,omitempty"`
	Today    progress.Counters      `json:"today"`
}

// SubmitResult is the feedback for one answered question.
type SubmitResult struct {
	Correct        *bool    `json:"correct,omitempty"`
	Explanation    string   `json:"explanation"`
	CorrectOptions []string `json:"correct_options,omitempty"`
	View           View     `json:"view"`
}

// MissedRow is one entry in the missed-question export.
type MissedRow struct {
	Question      string
	YourAnswer    string
	CorrectAnswer string
	Explanation   string
}

// SessionService drives a player's run: deterministic ordering, answer
// classification, focus review and resets. State is loaded, mutated and
// saved per call, so concurrent requests for the same player last-write-win.
type SessionService struct {
	catalog   *loader.Catalog
	store     store.PlayerStore
	scores    *ScoreService
	repeatGap int
	logger    *slog.Logger
	now       func() time.Time
}

func NewSessionService(catalog *loader.Catalog, st store.PlayerStore, scores *ScoreService, repeatGap int, logger *slog.Logger) *SessionService {
	if repeatGap <= 0 {
		repeatGap = progress.DefaultRepeatGap
	}
	return &SessionService{
		catalog:   catalog,
		store:     st,
		scores:    scores,
		repeatGap: repeatGap,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *SessionService) day() string {
	return s.now().Format("2006-01-02")
}

// load fetches questions and state and makes sure today's order exists.
func (s *SessionService) load(datasetID, player string) ([]question.Question, *progress.PlayerState, string, error) {
	qs, err := s.catalog.Load(datasetID)
	if err != nil {
		return nil, nil, "", err
	}

	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	k := key.PlayerKey(player, datasetID)
	state := s.store.Load(k, player)
	progress.EnsureDailyOrder(state, player, ids, s.day())
	return qs, state, k, nil
}

// Current returns the player's view for today, creating state on first
// contact.
func (s *SessionService) Current(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// Submit records an answer for the question at the cursor. The question id
// guards against a stale client.
func (s *SessionService) Submit(datasetID, player string, questionID int, out progress.Outcome) (SubmitResult, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return SubmitResult{}, err
	}

	current, ok := state.CurrentQuestion()
	if !ok || current != questionID {
		return SubmitResult{}, ErrStale
	}

	q, ok := findQuestion(qs, questionID)
	if !ok {
		return SubmitResult{}, ErrStale
	}

	// Choice questions are scored server side; open questions and
	// skip/unsure pass through as sent.
	if q.Type == question.TypeChoice && !out.Skipped && !out.Unsure {
		correct := question.IsCorrectChoice(q, out.Selected)
		out.Correct = &correct
		out.FreeText = nil
	}

	day := s.day()
	delta := state.Submit(questionID, out, s.repeatGap, day, s.now())
	if err := s.store.Save(k, state); err != nil {
		return SubmitResult{}, err
	}

	if delta != nil {
		s.scores.Publish(player, day, leaderboard.Delta{
			Correct: delta.Correct,
			Wrong:   delta.Wrong,
			Skipped: delta.Skipped,
		})
	}

	res := SubmitResult{
		Correct:     out.Correct,
		Explanation: question.SafeExplanation(q),
		View:        s.view(datasetID, qs, state),
	}
	if q.Type == question.TypeChoice {
		res.CorrectOptions = q.CorrectOptions()
	}
	return res, nil
}

// Navigate moves the cursor by delta, clamped to the active order.
func (s *SessionService) Navigate(datasetID, player string, delta int) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	state.Navigate(delta)
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// JumpToUnanswered moves the cursor to the next question without a recorded
// answer, searching forward from the cursor and wrapping around once. The
// cursor stays put when everything is answered or while in focus review.
func (s *SessionService) JumpToUnanswered(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	if state.Mode == progress.ModeNormal {
		if pos, ok := state.NextUnanswered(); ok {
			state.Cursor = pos
		}
	}
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// EnterFocus switches to review mode over the player's missed questions.
func (s *SessionService) EnterFocus(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	if len(state.FocusCandidates()) == 0 {
		return View{}, ErrNoMissed
	}
	state.EnterFocus()
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// RestartFocus rebuilds the focus round from the still-missed questions.
func (s *SessionService) RestartFocus(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	if len(state.FocusCandidates()) == 0 {
		state.ExitFocus()
		if err := s.store.Save(k, state); err != nil {
			return View{}, err
		}
		return View{}, ErrNoMissed
	}
	state.RestartFocus()
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// ExitFocus returns to the normal run at the saved position.
func (s *SessionService) ExitFocus(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	state.ExitFocus()
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// ResetCursor jumps back to the first question without touching answers.
func (s *SessionService) ResetCursor(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	state.ResetCursor()
	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// ResetAll wipes the player's state for the dataset.
func (s *SessionService) ResetAll(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}
	fresh := progress.ResetAll(state)

	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	progress.EnsureDailyOrder(fresh, player, ids, s.day())

	if err := s.store.Save(k, fresh); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, fresh), nil
}

// Reshuffle clears answers, bumps the shuffle nonce and starts a new pass
// in a fresh order. Past days' stats survive.
func (s *SessionService) Reshuffle(datasetID, player string) (View, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return View{}, err
	}

	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	state.ReshuffleAll(player, ids, s.day())

	if err := s.store.Save(k, state); err != nil {
		return View{}, err
	}
	return s.view(datasetID, qs, state), nil
}

// MissedRows collects the questions the player got wrong, skipped or was
// unsure about, in order, for export.
func (s *SessionService) MissedRows(datasetID, player string) ([]MissedRow, error) {
	qs, state, k, err := s.load(datasetID, player)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(k, state); err != nil {
		return nil, err
	}

	var rows []MissedRow
	seen := make(map[int]bool)
	for _, id := range state.Order {
		if seen[id] {
			continue
		}
		seen[id] = true

		rec, ok := state.Record(id)
		if !ok || !rec.Missed() {
			continue
		}
		q, ok := findQuestion(qs, id)
		if !ok {
			continue
		}
		rows = append(rows, MissedRow{
			Question:      q.Text,
			YourAnswer:    answerText(q, rec),
			CorrectAnswer: strings.Join(q.CorrectOptions(), "; "),
			Explanation:   question.SafeExplanation(q),
		})
	}
	return rows, nil
}

func (s *SessionService) view(datasetID string, qs []question.Question, state *progress.PlayerState) View {
	order := state.ActiveOrder()
	v := View{
		Player:   state.Player,
		Dataset:  datasetID,
		Day:      s.day(),
		Mode:     state.Mode,
		Cursor:   state.ActiveCursor(),
		Total:    len(order),
		Finished: state.Finished(),
		Today:    *state.DayFor(s.day()),
	}

	if id, ok := state.CurrentQuestion(); ok && !v.Finished {
		if q, found := findQuestion(qs, id); found {
			v.Question = &QuestionView{
				ID:         q.ID,
				Type:       q.Type,
				Text:       q.Text,
				Options:    q.Options,
				AnswerMode: q.AnswerMode,
				Hint:       q.Hint,
				Source:     q.Source,
				Locked:     state.Locked(state.ActiveCursor()),
			}
		}
	}
	return v
}

func findQuestion(qs []question.Question, id int) (question.Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return question.Question{}, false
}

func answerText(q question.Question, rec progress.AnswerRecord) string {
	switch {
	case rec.Skipped:
		return "(skipped)"
	case rec.Unsure:
		return "(unsure)"
	}
	if rec.FreeText != nil {
		return *rec.FreeText
	}
	if len(rec.Selected) > 0 {
		var parts []string
		for _, idx := range rec.Selected {
			if idx >= 0 && idx < len(q.Options) {
				parts = append(parts, q.Options[idx])
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
