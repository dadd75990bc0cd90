package leaderboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS scores_daily (
    player TEXT NOT NULL,
    day TEXT NOT NULL,
    correct INTEGER NOT NULL DEFAULT 0,
    wrong INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (player, day)
);
`

// PostgresBoard is the shared backend. Several installations pointing at
// the same database see one combined leaderboard.
type PostgresBoard struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*PostgresBoard, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect leaderboard database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure leaderboard schema: %w", err)
	}

	return &PostgresBoard{pool: pool}, nil
}

func (b *PostgresBoard) Close() error {
	b.pool.Close()
	return nil
}

func (b *PostgresBoard) ApplyDelta(ctx context.Context, player, day string, d Delta) error {
	if d.Zero() {
		return nil
	}
	_, err := b.pool.Exec(ctx, `
		INSERT INTO scores_daily (player, day, correct, wrong, skipped)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player, day) DO UPDATE SET
			correct = scores_daily.correct + EXCLUDED.correct,
			wrong = scores_daily.wrong + EXCLUDED.wrong,
			skipped = scores_daily.skipped + EXCLUDED.skipped`,
		player, day, d.Correct, d.Wrong, d.Skipped)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	return nil
}

func (b *PostgresBoard) TopByDay(ctx context.Context, day string, limit int) ([]Row, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT player, correct, wrong, skipped
		FROM scores_daily
		WHERE day = $1
		ORDER BY correct DESC, wrong ASC, skipped ASC, player ASC
		LIMIT $2`, day, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Player, &r.Correct, &r.Wrong, &r.Skipped); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (b *PostgresBoard) TopOverall(ctx context.Context, limit int) ([]Row, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT player, SUM(correct), SUM(wrong), SUM(skipped)
		FROM scores_daily
		GROUP BY player
		ORDER BY SUM(correct) DESC, SUM(wrong) ASC, SUM(skipped) ASC, player ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Player, &r.Correct, &r.Wrong, &r.Skipped); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
