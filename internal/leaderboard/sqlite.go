package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scores_daily (
    player TEXT NOT NULL,
    day TEXT NOT NULL,
    correct INTEGER NOT NULL DEFAULT 0,
    wrong INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (player, day)
);
`

// SQLiteBoard keeps scores in a local database file. It is the default
// backend when no shared database is configured.
type SQLiteBoard struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteBoard, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBoard{db: db}, nil
}

func (b *SQLiteBoard) Close() error {
	return b.db.Close()
}

func (b *SQLiteBoard) ApplyDelta(ctx context.Context, player, day string, d Delta) error {
	if d.Zero() {
		return nil
	}
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO scores_daily (player, day, correct, wrong, skipped)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (player, day) DO UPDATE SET
			correct = correct + excluded.correct,
			wrong = wrong + excluded.wrong,
			skipped = skipped + excluded.skipped`,
		player, day, d.Correct, d.Wrong, d.Skipped)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	return nil
}

func (b *SQLiteBoard) TopByDay(ctx context.Context, day string, limit int) ([]Row, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT player, correct, wrong, skipped
		FROM scores_daily
		WHERE day = ?
		ORDER BY correct DESC, wrong ASC, skipped ASC, player ASC
		LIMIT ?`, day, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

func (b *SQLiteBoard) TopOverall(ctx context.Context, limit int) ([]Row, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT player, SUM(correct), SUM(wrong), SUM(skipped)
		FROM scores_daily
		GROUP BY player
		ORDER BY SUM(correct) DESC, SUM(wrong) ASC, SUM(skipped) ASC, player ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
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
