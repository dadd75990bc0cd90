package store_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lernquiz/backend/internal/domain/progress"
	"github.com/lernquiz/backend/internal/store"
)

func newStore(t *testing.T) *store.JSONFileStore {
	t.Helper()
	s, err := store.NewJSONFileStore(t.TempDir(), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestLoad_MissingFileYieldsSkeleton(t *testing.T) {
	s := newStore(t)

	state := s.Load("biology_alice", "Alice")

	if state.Player != "Alice" {
		t.Errorf("expected player set on skeleton, got %q", state.Player)
	}
	if len(state.Order) != 0 || len(state.Answered) != 0 {
		t.Error("expected an empty skeleton")
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	s := newStore(t)

	state := progress.NewState("Alice")
	progress.EnsureDailyOrder(state, "Alice", []int{1, 2, 3}, "2024-01-01")
	state.Submit(state.Order[0], progress.Outcome{Skipped: true}, 7, "2024-01-01", time.Now())

	if err := s.Save("biology_alice", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := s.Load("biology_alice", "Alice")

	if loaded.Cursor != state.Cursor {
		t.Errorf("cursor: got %d, want %d", loaded.Cursor, state.Cursor)
	}
	if len(loaded.Order) != len(state.Order) {
		t.Errorf("order length: got %d, want %d", len(loaded.Order), len(state.Order))
	}
	if len(loaded.Answered) != 1 {
		t.Errorf("expected 1 answer record, got %d", len(loaded.Answered))
	}
	if loaded.Daily["2024-01-01"].Skipped != 1 {
		t.Errorf("daily counters lost: %+v", loaded.Daily["2024-01-01"])
	}
}

func TestLoad_MalformedBlobHealsToSkeleton(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewJSONFileStore(dir, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "biology_alice.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	state := s.Load("biology_alice", "Alice")

	if state.Player != "Alice" || len(state.Answered) != 0 {
		t.Error("expected a fresh skeleton for a malformed blob")
	}
}
