package progress

import (
	"strconv"
	"time"
)

// TraversalMode says which run the cursor currently walks: the normal daily
// order or the bounded focus-review list.
type TraversalMode string

const (
	ModeNormal TraversalMode = "normal"
	ModeFocus  TraversalMode = "focus_review"
)

// Counters aggregates one day's outcomes.
type Counters struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Skipped int `json:"skipped"`
	Unsure  int `json:"unsure"`
	Total   int `json:"total"`
}

// AnswerRecord is the master record for one question id. Fields written by a
// later attempt override the earlier ones; Repeats and Mastered survive merges.
type AnswerRecord struct {
	Timestamp time.Time `json:"ts"`
	Correct   *bool     `json:"correct"` // nil for open questions (never auto-scored)
	Selected  []int     `json:"selected,omitempty"`
	FreeText  *string   `json:"free_text,omitempty"`
	Skipped   bool      `json:"skipped,omitempty"`
	Unsure    bool      `json:"unsure,omitempty"`
	Repeats   int       `json:"repeats_scheduled,omitempty"`
	Mastered  bool      `json:"mastered,omitempty"`
}

// Missed reports whether the record's latest content classifies the question
// as one to practice again.
func (r AnswerRecord) Missed() bool {
	return r.Skipped || r.Unsure || (r.Correct != nil && !*r.Correct)
}

// PlayerState is the whole persisted blob for one player+dataset pair.
// Every operation loads it, mutates it, and writes it back whole.
type PlayerState struct {
	Player       string                  `json:"player"`
	Order        []int                   `json:"order"`
	Cursor       int                     `json:"cursor"`
	OrderKey     string                  `json:"order_key"` // day + "#" + nonce at generation time
	ShuffleNonce int                     `json:"shuffle_nonce"`
	Answered     map[string]AnswerRecord `json:"answered"`
	Daily        map[string]*Counters    `json:"daily"`

	Mode TraversalMode `json:"mode,omitempty"`

	// Focus-review bookkeeping, only meaningful while Mode == ModeFocus.
	// FocusAnswered keeps lock state separate from the master history so
	// missed questions become answerable again.
	FocusOrder    []int                `json:"focus_order,omitempty"`
	FocusCursor   int                  `json:"focus_cursor,omitempty"`
	FocusAnswered map[string]time.Time `json:"focus_answered,omitempty"`
	SavedCursor   int                  `json:"saved_cursor,omitempty"`
}

// NewState returns an empty skeleton for a player.
func NewState(player string) *PlayerState {
	return &PlayerState{
		Player:   player,
		Order:    []int{},
		Answered: make(map[string]AnswerRecord),
		Daily:    make(map[string]*Counters),
		Mode:     ModeNormal,
	}
}

// Normalize repairs a state loaded from disk: nil maps from hand-edited or
// truncated blobs become empty ones and an unknown mode falls back to normal,
// so a damaged file degrades instead of crashing the session.
func (s *PlayerState) Normalize() {
	if s.Answered == nil {
		s.Answered = make(map[string]AnswerRecord)
	}
	if s.Daily == nil {
		s.Daily = make(map[string]*Counters)
	}
	if s.Mode != ModeFocus {
		s.Mode = ModeNormal
	}
	if s.Mode == ModeFocus && s.FocusAnswered == nil {
		s.FocusAnswered = make(map[string]time.Time)
	}
}

// DayFor reports (and creates) the counters bucket for a day.
func (s *PlayerState) DayFor(day string) *Counters {
	d, ok := s.Daily[day]
	if !ok {
		d = &Counters{}
		s.Daily[day] = d
	}
	return d
}

// Record returns the master record for a question id, if any.
func (s *PlayerState) Record(qid int) (AnswerRecord, bool) {
	r, ok := s.Answered[qidKey(qid)]
	return r, ok
}

func qidKey(qid int) string {
	return strconv.Itoa(qid)
}
