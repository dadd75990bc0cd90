package store

import "github.com/lernquiz/backend/internal/domain/progress"

// PlayerStore persists one whole state blob per player key. The blob is the
// sole source of truth: every operation loads it, mutates it, and saves it
// back whole. Last write wins.
type PlayerStore interface {
	// Load returns the stored state for a key, or a fresh skeleton when
	// nothing usable is on disk. A malformed blob degrades to a skeleton
	// rather than failing the session.
	Load(key, player string) *progress.PlayerState

	// Save writes the full blob for a key.
	Save(key string, state *progress.PlayerState) error
}
