package progress

// ResetCursor restarts the normal traversal from the top. History and
// counters stay intact.
func (s *PlayerState) ResetCursor() {
	if s.Mode == ModeFocus {
		s.FocusCursor = 0
		return
	}
	s.Cursor = 0
}

// ResetAll replaces the state with a fresh skeleton for the same player.
func ResetAll(s *PlayerState) *PlayerState {
	return NewState(s.Player)
}

// ReshuffleAll starts a new run over the full dataset with a different
// shuffle: answers and any scheduled duplicates are cleared, today's
// counters are zeroed, and the nonce bump forces a fresh order. Counters
// for other days — and anything already sent to the external leaderboard —
// are left alone.
func (s *PlayerState) ReshuffleAll(player string, ids []int, day string) {
	if s.Mode == ModeFocus {
		s.ExitFocus()
	}
	s.Answered = make(map[string]AnswerRecord)
	s.Daily[day] = &Counters{}
	s.ShuffleNonce++
	EnsureDailyOrder(s, player, ids, day)
	s.Cursor = 0
}
