package progress

import "time"

// FocusCandidates lists the question ids currently worth practicing again:
// every id in the normal order whose latest master record is missed and not
// mastered, de-duplicated in first-seen order.
func (s *PlayerState) FocusCandidates() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, qid := range s.Order {
		if _, dup := seen[qid]; dup {
			continue
		}
		seen[qid] = struct{}{}
		rec, ok := s.Answered[qidKey(qid)]
		if !ok || rec.Mastered || !rec.Missed() {
			continue
		}
		out = append(out, qid)
	}
	return out
}

// EnterFocus snapshots the current candidate list and switches to focus
// review. The normal cursor is remembered so the run can resume later, and
// a fresh focus answered-map makes every candidate answerable again without
// touching the master history.
func (s *PlayerState) EnterFocus() {
	if s.Mode == ModeFocus {
		return
	}
	s.SavedCursor = s.Cursor
	s.FocusOrder = s.FocusCandidates()
	s.FocusCursor = 0
	s.FocusAnswered = make(map[string]time.Time)
	s.Mode = ModeFocus
}

// RestartFocus recomputes the candidate list from the latest answer
// statuses, so questions mastered during the previous pass drop out.
func (s *PlayerState) RestartFocus() {
	if s.Mode != ModeFocus {
		return
	}
	s.FocusOrder = s.FocusCandidates()
	s.FocusCursor = 0
	s.FocusAnswered = make(map[string]time.Time)
}

// ExitFocus resumes the normal traversal where it left off and discards all
// focus bookkeeping.
func (s *PlayerState) ExitFocus() {
	if s.Mode != ModeFocus {
		return
	}
	s.Mode = ModeNormal
	s.Cursor = clampCursor(s.SavedCursor, len(s.Order))
	s.FocusOrder = nil
	s.FocusCursor = 0
	s.FocusAnswered = nil
	s.SavedCursor = 0
}

// submitFocus records an answer inside focus review. Locking goes through
// the focus map only; the master record still receives the latest content so
// history reflects the newest attempt, and a clean correct retry marks the
// question mastered. Daily counters and score deltas are never touched here.
func (s *PlayerState) submitFocus(key string, out Outcome, now time.Time) {
	s.FocusAnswered[key] = now
	s.mergeRecord(key, out, now)

	if out.Correct != nil && *out.Correct && !out.Skipped && !out.Unsure {
		rec := s.Answered[key]
		rec.Mastered = true
		s.Answered[key] = rec
	}

	s.FocusCursor = clampCursor(s.FocusCursor+1, len(s.FocusOrder))
}
