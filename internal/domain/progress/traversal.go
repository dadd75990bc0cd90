package progress

// ActiveOrder returns the order the cursor currently walks.
func (s *PlayerState) ActiveOrder() []int {
	if s.Mode == ModeFocus {
		return s.FocusOrder
	}
	return s.Order
}

// ActiveCursor returns the cursor of the active traversal.
func (s *PlayerState) ActiveCursor() int {
	if s.Mode == ModeFocus {
		return s.FocusCursor
	}
	return s.Cursor
}

// CurrentQuestion returns the question id at the active cursor. ok is false
// once the run is complete.
func (s *PlayerState) CurrentQuestion() (qid int, ok bool) {
	order := s.ActiveOrder()
	cursor := s.ActiveCursor()
	if cursor < 0 || cursor >= len(order) {
		return 0, false
	}
	return order[cursor], true
}

// Locked reports whether answering at the active cursor must be refused.
// A position already walked past with a recorded answer is locked; the
// current position is always answerable, which is what lets a scheduled
// duplicate of an already-answered question be attempted again.
func (s *PlayerState) Locked(position int) bool {
	if s.Mode == ModeFocus {
		if position < 0 || position >= len(s.FocusOrder) {
			return true
		}
		_, done := s.FocusAnswered[qidKey(s.FocusOrder[position])]
		return done && position < s.FocusCursor
	}
	if position < 0 || position >= len(s.Order) {
		return true
	}
	_, done := s.Answered[qidKey(s.Order[position])]
	return done && position < s.Cursor
}

// Finished reports whether the active run is complete: the cursor ran off
// the end, or every id in the order has an entry in the active answered map.
func (s *PlayerState) Finished() bool {
	order := s.ActiveOrder()
	if s.ActiveCursor() >= len(order) {
		return true
	}
	for _, qid := range order {
		if s.Mode == ModeFocus {
			if _, ok := s.FocusAnswered[qidKey(qid)]; !ok {
				return false
			}
		} else {
			if _, ok := s.Answered[qidKey(qid)]; !ok {
				return false
			}
		}
	}
	return len(order) > 0
}

// NextUnanswered finds the position of the next question without a master
// record, searching forward from the cursor and wrapping around once.
// Searching from the cursor rather than from the start mirrors the
// long-standing toggle behavior: items before the cursor are only reached
// after the wrap.
func (s *PlayerState) NextUnanswered() (position int, ok bool) {
	n := len(s.Order)
	for i := 0; i < n; i++ {
		pos := (s.Cursor + i) % n
		if _, answered := s.Answered[qidKey(s.Order[pos])]; !answered {
			return pos, true
		}
	}
	return 0, false
}

// Navigate moves the active cursor by delta without recording an answer,
// clamped to the valid range.
func (s *PlayerState) Navigate(delta int) {
	if s.Mode == ModeFocus {
		s.FocusCursor = clampCursor(s.FocusCursor+delta, len(s.FocusOrder))
		return
	}
	s.Cursor = clampCursor(s.Cursor+delta, len(s.Order))
}
