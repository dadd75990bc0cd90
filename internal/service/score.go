// internal/service/score.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lernquiz/backend/internal/leaderboard"
	"github.com/lernquiz/backend/internal/worker"
)

// ScoreService publishes score deltas to the leaderboard without blocking
// the submitting request. Delivery is best effort and at most once; a
// failed push is logged and dropped, local progress stays authoritative.
type ScoreService struct {
	board  leaderboard.Board
	pool   *worker.Pool
	logger *slog.Logger
}

// NewScoreService creates a ScoreService. A nil board disables publishing.
func NewScoreService(board leaderboard.Board, pool *worker.Pool, logger *slog.Logger) *ScoreService {
	return &ScoreService{
		board:  board,
		pool:   pool,
		logger: logger,
	}
}

// Publish queues one delta for delivery.
func (ss *ScoreService) Publish(player, day string, d leaderboard.Delta) {
	if ss.board == nil || d.Zero() {
		return
	}

	ss.pool.Submit(func() {
		// context.Background because delivery outlives the originating
		// HTTP request.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := ss.board.ApplyDelta(ctx, player, day, d); err != nil {
			ss.logger.Warn("leaderboard push failed",
				"player", player,
				"day", day,
				"error", err,
			)
		}
	})
}

// Drain blocks until all queued deltas have been attempted.
func (ss *ScoreService) Drain() {
	ss.pool.Drain()
}
