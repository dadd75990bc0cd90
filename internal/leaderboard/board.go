package leaderboard

import "context"

// Delta is one submission's contribution to a player's daily score.
type Delta struct {
	Correct int
	Wrong   int
	Skipped int
}

// Zero reports whether applying the delta would change nothing.
func (d Delta) Zero() bool {
	return d.Correct == 0 && d.Wrong == 0 && d.Skipped == 0
}

// Row is one leaderboard entry, either for a single day or summed across
// all days.
type Row struct {
	Player  string `json:"player"`
	Correct int    `json:"correct"`
	Wrong   int    `json:"wrong"`
	Skipped int    `json:"skipped"`
}

// Board accumulates per-player daily scores. Rows are ordered by correct
// answers descending, then wrong ascending, skipped ascending and player
// name ascending.
type Board interface {
	ApplyDelta(ctx context.Context, player, day string, d Delta) error
	TopByDay(ctx context.Context, day string, limit int) ([]Row, error)
	TopOverall(ctx context.Context, limit int) ([]Row, error)
	Close() error
}
