package loader

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lernquiz/backend/internal/domain/question"
)

// rawQuestion tolerates the field spellings that accumulated in dataset
// files over time. Unknown extras are ignored.
type rawQuestion struct {
	ID          int             `json:"id,omitempty"`
	Type        string          `json:"type,omitempty"`
	Text        string          `json:"question,omitempty"`
	AltText     string          `json:"text,omitempty"`
	Options     []string        `json:"options,omitempty"`
	Correct     json.RawMessage `json:"correct,omitempty"`
	AnswerMode  string          `json:"answerType,omitempty"`
	AnswerMode2 string          `json:"answer_mode,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
	Solution    string          `json:"solution,omitempty"`
	Hint        string          `json:"hint,omitempty"`
	Source      string          `json:"source,omitempty"`
}

func normalize(raw rawQuestion) question.Question {
	q := question.Question{
		ID:          raw.ID,
		Options:     raw.Options,
		Explanation: raw.Explanation,
		Solution:    raw.Solution,
		Hint:        raw.Hint,
		Source:      raw.Source,
	}

	q.Text = strings.TrimSpace(raw.Text)
	if q.Text == "" {
		q.Text = strings.TrimSpace(raw.AltText)
	}
	if q.Text == "" {
		q.Text = "(question text missing)"
	}

	switch strings.ToLower(strings.TrimSpace(raw.Type)) {
	case "open", "text", "free", "freetext":
		q.Type = question.TypeOpen
	default:
		// "mc", "choice", "multiple_choice" and anything unrecognized.
		q.Type = question.TypeChoice
	}

	mode := raw.AnswerMode
	if mode == "" {
		mode = raw.AnswerMode2
	}
	q.Correct = parseCorrect(raw.Correct, raw.Options)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "multi", "multiple":
		q.AnswerMode = question.ModeMulti
	case "single":
		q.AnswerMode = question.ModeSingle
	default:
		if len(q.Correct) > 1 {
			q.AnswerMode = question.ModeMulti
		} else {
			q.AnswerMode = question.ModeSingle
		}
	}

	if q.Type == question.TypeOpen {
		q.Options = nil
		q.Correct = nil
	}
	return q
}

// parseCorrect accepts indices (0-based ints), option letters ("A", "c")
// or full option strings, in either scalar or list form.
func parseCorrect(raw json.RawMessage, options []string) []int {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		items = []json.RawMessage{raw}
	}

	var out []int
	seen := make(map[int]bool)
	for _, item := range items {
		idx, ok := parseCorrectItem(item, options)
		if !ok || idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

func parseCorrectItem(item json.RawMessage, options []string) (int, bool) {
	var n int
	if err := json.Unmarshal(item, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(item, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if len(s) == 1 {
		c := s[0]
		if c >= 'A' && c <= 'Z' {
			return int(c - 'A'), true
		}
		if c >= 'a' && c <= 'z' {
			return int(c - 'a'), true
		}
	}
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), s) {
			return i, true
		}
	}
	return 0, false
}

func rawFromQuestion(q question.Question) rawQuestion {
	raw := rawQuestion{
		ID:          q.ID,
		Text:        q.Text,
		Options:     q.Options,
		Explanation: q.Explanation,
		Solution:    q.Solution,
		Hint:        q.Hint,
		Source:      q.Source,
	}
	switch q.Type {
	case question.TypeOpen:
		raw.Type = "open"
	default:
		raw.Type = "choice"
	}
	switch q.AnswerMode {
	case question.ModeMulti:
		raw.AnswerMode = "multi"
	default:
		raw.AnswerMode = "single"
	}
	if len(q.Correct) > 0 {
		data, err := json.Marshal(q.Correct)
		if err == nil {
			raw.Correct = data
		}
	}
	return raw
}
