package progress_test

import (
	"testing"

	"github.com/lernquiz/backend/internal/domain/progress"
)

// missedState answers 1 wrong, 2 correct, 3 skipped so that 1 and 3 are
// focus candidates.
func missedState(t *testing.T) *progress.PlayerState {
	t.Helper()
	s := seededState("alice", []int{1, 2, 3})

	// gap larger than the order so the duplicates land at the end and the
	// fixed positions stay predictable
	s.Submit(1, progress.Outcome{Correct: boolPtr(false)}, 99, day, now)
	if qid, _ := s.CurrentQuestion(); qid != 2 {
		t.Fatalf("setup: expected qid 2 at cursor, got %d (order %v)", qid, s.Order)
	}
	s.Submit(2, progress.Outcome{Correct: boolPtr(true)}, 99, day, now)
	s.Submit(3, progress.Outcome{Skipped: true}, 99, day, now)
	return s
}

func TestFocusCandidates(t *testing.T) {
	s := missedState(t)

	got := s.FocusCandidates()
	want := map[int]bool{1: true, 3: true}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	for _, qid := range got {
		if !want[qid] {
			t.Errorf("unexpected candidate %d", qid)
		}
	}
}

func TestFocus_IsolatesCountersAndDeltas(t *testing.T) {
	s := missedState(t)
	before := *s.Daily[day]

	s.EnterFocus()
	qid, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("expected a focus question")
	}

	delta := s.Submit(qid, progress.Outcome{Correct: boolPtr(true), Selected: []int{0}}, 99, day, now)

	if delta != nil {
		t.Errorf("focus answers must not emit score deltas, got %+v", delta)
	}
	if after := *s.Daily[day]; after != before {
		t.Errorf("focus answer mutated daily counters: %+v -> %+v", before, after)
	}
}

func TestFocus_MastersCleanRetry(t *testing.T) {
	s := missedState(t)
	s.EnterFocus()

	qid, _ := s.CurrentQuestion()
	s.Submit(qid, progress.Outcome{Correct: boolPtr(true)}, 99, day, now)

	rec, _ := s.Record(qid)
	if !rec.Mastered {
		t.Error("expected a correct retry to mark the question mastered")
	}
	if rec.Correct == nil || !*rec.Correct {
		t.Error("expected the master record content to reflect the retry")
	}
}

func TestFocus_UnsureRetryDoesNotMaster(t *testing.T) {
	s := missedState(t)
	s.EnterFocus()

	qid, _ := s.CurrentQuestion()
	s.Submit(qid, progress.Outcome{Correct: boolPtr(true), Unsure: true}, 99, day, now)

	rec, _ := s.Record(qid)
	if rec.Mastered {
		t.Error("an unsure retry must not count as mastered")
	}
}

func TestFocus_ExitRestoresNormalRun(t *testing.T) {
	s := missedState(t)
	savedCursor := s.Cursor

	s.EnterFocus()
	qid, _ := s.CurrentQuestion()
	s.Submit(qid, progress.Outcome{Correct: boolPtr(true)}, 99, day, now)
	s.ExitFocus()

	if s.Mode != progress.ModeNormal {
		t.Errorf("expected normal mode after exit, got %q", s.Mode)
	}
	if s.Cursor != savedCursor {
		t.Errorf("expected cursor %d restored, got %d", savedCursor, s.Cursor)
	}
	if s.FocusOrder != nil || s.FocusAnswered != nil {
		t.Error("expected focus bookkeeping discarded on exit")
	}
}

func TestFocus_RestartDropsMasteredItems(t *testing.T) {
	s := missedState(t)
	s.EnterFocus()

	if len(s.FocusOrder) != 2 {
		t.Fatalf("expected 2 focus questions, got %v", s.FocusOrder)
	}

	first, _ := s.CurrentQuestion()
	s.Submit(first, progress.Outcome{Correct: boolPtr(true)}, 99, day, now)
	second, _ := s.CurrentQuestion()
	s.Submit(second, progress.Outcome{Skipped: true}, 99, day, now)

	if !s.Finished() {
		t.Fatal("expected focus pass finished")
	}

	s.RestartFocus()

	if len(s.FocusOrder) != 1 || s.FocusOrder[0] != second {
		t.Errorf("expected only the still-missed question, got %v", s.FocusOrder)
	}
	if s.FocusCursor != 0 {
		t.Errorf("expected focus cursor reset, got %d", s.FocusCursor)
	}
}

func TestFocus_LockDerivesFromFocusMapOnly(t *testing.T) {
	s := missedState(t)
	s.EnterFocus()

	// Every candidate already has a master record, yet the focus run must
	// make it answerable again.
	if s.Locked(s.FocusCursor) {
		t.Error("focus question locked despite fresh focus map")
	}

	qid, _ := s.CurrentQuestion()
	s.Submit(qid, progress.Outcome{Correct: boolPtr(true)}, 99, day, now)

	if !s.Locked(0) {
		t.Error("expected answered focus position locked")
	}
}

func TestReshuffleAll(t *testing.T) {
	s := missedState(t) // includes scheduled repeats in Order
	otherDay := "2023-12-31"
	s.Daily[otherDay] = &progress.Counters{Correct: 5, Total: 5}
	nonce := s.ShuffleNonce

	ids := []int{1, 2, 3}
	s.ReshuffleAll("alice", ids, day)

	if s.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", s.Cursor)
	}
	if got := *s.Daily[day]; got != (progress.Counters{}) {
		t.Errorf("expected today zeroed, got %+v", got)
	}
	if got := *s.Daily[otherDay]; got != (progress.Counters{Correct: 5, Total: 5}) {
		t.Errorf("other days must stay intact, got %+v", got)
	}
	if len(s.Answered) != 0 {
		t.Errorf("expected answer history cleared, got %d entries", len(s.Answered))
	}
	if s.ShuffleNonce != nonce+1 {
		t.Errorf("expected nonce bump, got %d", s.ShuffleNonce)
	}

	// Fresh permutation of exactly the current ids, scheduled duplicates gone.
	if len(s.Order) != len(ids) {
		t.Fatalf("expected order of %d ids, got %v", len(ids), s.Order)
	}
	seen := make(map[int]bool)
	for _, id := range s.Order {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("id %d missing from reshuffled order %v", id, s.Order)
		}
	}
}

func TestResetAll(t *testing.T) {
	s := missedState(t)

	fresh := progress.ResetAll(s)

	if fresh.Player != "alice" {
		t.Errorf("expected player preserved, got %q", fresh.Player)
	}
	if len(fresh.Answered) != 0 || len(fresh.Daily) != 0 || len(fresh.Order) != 0 {
		t.Error("expected an empty skeleton")
	}
}

func TestNormalize_RepairsDamagedBlob(t *testing.T) {
	s := &progress.PlayerState{Player: "alice", Mode: "???"}

	s.Normalize()

	if s.Answered == nil || s.Daily == nil {
		t.Error("expected maps initialized")
	}
	if s.Mode != progress.ModeNormal {
		t.Errorf("expected unknown mode reset to normal, got %q", s.Mode)
	}
}
