package progress

import "time"

// DefaultRepeatGap is how many positions ahead a missed question is
// scheduled again when spaced repetition kicks in.
const DefaultRepeatGap = 7

// maxRepeats bounds how often a single question may be re-scheduled.
const maxRepeats = 2

// Outcome carries everything the caller knows about one answer.
type Outcome struct {
	Correct  *bool // nil for open questions
	Selected []int
	FreeText *string
	Skipped  bool
	Unsure   bool
}

// ScoreDelta is the event handed to the external score aggregator. Exactly
// one field is 1 for a scored first-ever answer.
type ScoreDelta struct {
	Correct int
	Wrong   int
	Skipped int
}

// Submit records an answer for qid and advances the active cursor by one.
//
// Two "first time" scopes apply: the active traversal's answered map decides
// locking, while the master map decides whether today's counters are bumped
// and a score delta is emitted. A question re-encountered via a scheduled
// repeat or inside focus review is first-time-in-run but not first-time-ever,
// so it never double-counts.
//
// The returned delta is nil whenever nothing should reach the aggregator
// (repeat encounters, focus mode, unscored open answers).
func (s *PlayerState) Submit(qid int, out Outcome, gap int, day string, now time.Time) *ScoreDelta {
	if gap <= 0 {
		gap = DefaultRepeatGap
	}
	key := qidKey(qid)

	if s.Mode == ModeFocus {
		s.submitFocus(key, out, now)
		return nil
	}

	_, seen := s.Answered[key]
	position := s.Cursor

	s.mergeRecord(key, out, now)
	s.Cursor = clampCursor(s.Cursor+1, len(s.Order))

	if out.Correct != nil && !*out.Correct || out.Skipped || out.Unsure {
		s.scheduleRepeat(qid, position, gap)
	}

	if seen {
		return nil
	}

	d := s.DayFor(day)
	d.Total++
	var delta *ScoreDelta
	switch {
	case out.Skipped:
		d.Skipped++
		delta = &ScoreDelta{Skipped: 1}
	case out.Unsure:
		d.Unsure++
		delta = &ScoreDelta{Skipped: 1}
	case out.Correct != nil && *out.Correct:
		d.Correct++
		delta = &ScoreDelta{Correct: 1}
	case out.Correct != nil:
		d.Wrong++
		delta = &ScoreDelta{Wrong: 1}
	}
	// Open answers (Correct == nil, not skipped or unsure) only count
	// toward the total; there is nothing to aggregate.
	return delta
}

// mergeRecord folds an outcome into the master record. Later fields override
// earlier ones; repeat bookkeeping and mastery survive.
func (s *PlayerState) mergeRecord(key string, out Outcome, now time.Time) {
	rec := s.Answered[key]
	rec.Timestamp = now
	rec.Correct = out.Correct
	rec.Selected = out.Selected
	rec.FreeText = out.FreeText
	rec.Skipped = out.Skipped
	rec.Unsure = out.Unsure
	s.Answered[key] = rec
}

// scheduleRepeat inserts a duplicate of qid a few positions ahead of where
// it was just answered, bounded to maxRepeats per question and skipped when
// the id already occurs again past the cursor. Focus review never schedules.
func (s *PlayerState) scheduleRepeat(qid, position, gap int) {
	rec := s.Answered[qidKey(qid)]
	if rec.Repeats >= maxRepeats {
		return
	}
	for _, id := range s.Order[s.Cursor:] {
		if id == qid {
			return
		}
	}

	at := position + gap
	if at > len(s.Order) {
		at = len(s.Order)
	}
	s.Order = append(s.Order, 0)
	copy(s.Order[at+1:], s.Order[at:])
	s.Order[at] = qid

	rec.Repeats++
	s.Answered[qidKey(qid)] = rec
}
