package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lernquiz/backend/internal/domain/progress"
)

// JSONFileStore keeps one pretty-printed JSON file per player key in a
// progress directory, mirroring how the state blob travels through the rest
// of the system: read whole, write whole.
type JSONFileStore struct {
	dir    string
	logger *slog.Logger
}

// NewJSONFileStore creates the progress directory if needed.
func NewJSONFileStore(dir string, logger *slog.Logger) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	return &JSONFileStore{dir: dir, logger: logger}, nil
}

func (s *JSONFileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the blob for a key. Missing or unreadable files yield a fresh
// skeleton; the session must never fail because a blob went bad.
func (s *JSONFileStore) Load(key, player string) *progress.PlayerState {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("unreadable progress file, starting fresh", "key", key, "error", err)
		}
		return progress.NewState(player)
	}

	var state progress.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("malformed progress file, starting fresh", "key", key, "error", err)
		return progress.NewState(player)
	}

	if state.Player == "" {
		state.Player = player
	}
	state.Normalize()
	return &state
}

// Save writes the whole blob. Last write wins; concurrent sessions for the
// same player are out of scope.
func (s *JSONFileStore) Save(key string, state *progress.PlayerState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
