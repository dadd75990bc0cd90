package question

// Type distinguishes auto-scored choice questions from free-text ones.
type Type string

const (
	TypeChoice Type = "choice"
	TypeOpen   Type = "open"
)

// AnswerMode controls how selections on a choice question are scored.
type AnswerMode string

const (
	ModeSingle AnswerMode = "single"
	ModeMulti  AnswerMode = "multi"
)

// Question is the canonical record the engine works with. The loader is
// responsible for normalizing whatever field variants the JSON files use
// into this shape.
type Question struct {
	ID          int
	Type        Type
	Text        string
	Options     []string   // empty for open questions
	Correct     []int      // option indices; empty for open questions
	AnswerMode  AnswerMode // single or multi
	Explanation string
	Solution    string // model answer for open questions
	Hint        string
	Source      string // e.g. "base", "user_added"
}

// IsCorrectChoice scores a selection against a choice question.
// Multi mode requires the selection to equal the correct set exactly
// (order-independent). Single mode requires exactly one selection that is
// among the correct indices. Open questions are never auto-scored.
func IsCorrectChoice(q Question, selected []int) bool {
	if q.Type != TypeChoice {
		return false
	}

	correct := make(map[int]struct{}, len(q.Correct))
	for _, i := range q.Correct {
		correct[i] = struct{}{}
	}

	if q.AnswerMode == ModeMulti {
		chosen := make(map[int]struct{}, len(selected))
		for _, i := range selected {
			chosen[i] = struct{}{}
		}
		if len(chosen) != len(correct) {
			return false
		}
		for i := range chosen {
			if _, ok := correct[i]; !ok {
				return false
			}
		}
		return true
	}

	if len(selected) != 1 {
		return false
	}
	_, ok := correct[selected[0]]
	return ok
}

// CorrectOptions returns the option texts for the correct indices,
// skipping indices that fall outside the option list.
func (q Question) CorrectOptions() []string {
	var out []string
	for _, i := range q.Correct {
		if i >= 0 && i < len(q.Options) {
			out = append(out, q.Options[i])
		}
	}
	return out
}
