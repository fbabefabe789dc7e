// Package store implements the SQLite persistence layer: two tables,
// solutions and p2_responses, written as insert-or-ignore batches and
// read back by the analyze package (through its own connection).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	_ "modernc.org/sqlite"

	"github.com/niyagame/niya/sample"
)

const schema = `
CREATE TABLE IF NOT EXISTS solutions (
	rank INTEGER PRIMARY KEY,
	p1_win INTEGER NOT NULL,
	is_draw INTEGER NOT NULL,
	best_move INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	best_move_position TEXT NOT NULL,
	game_depth INTEGER NOT NULL,
	p1_wins_count INTEGER NOT NULL,
	p2_wins_count INTEGER NOT NULL,
	draws_count INTEGER NOT NULL,
	has_p2_data INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS p2_responses (
	rank INTEGER NOT NULL,
	p1_move INTEGER NOT NULL,
	p2_best_move INTEGER NOT NULL,
	is_p1_win INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	PRIMARY KEY (rank, p1_move)
);
`

// Store is a handle to a SQLite database file. Connections are
// short-lived: each call opens its own connection and closes it before
// returning, rather than holding a long-lived pool open.
type Store struct {
	path string
}

// New opens path (creating its parent directory, the file, and the
// schema if necessary) and returns a Store bound to it.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{path: path}, nil
}

// Open returns a read-only-intent connection to the same database file,
// for callers that run their own queries (SolvedCount uses it).
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return db, nil
}

// InsertBatch implements sample.Sink: it writes every record's solution
// row and (if present) its twelve P2Response rows in a single
// transaction, ignoring primary-key conflicts, retrying on transient
// SQLITE_BUSY contention from concurrent writers.
func (s *Store) InsertBatch(ctx context.Context, records []sample.Record) error {
	if len(records) == 0 {
		return nil
	}
	return retry.Do(
		func() error { return s.insertBatchOnce(ctx, records) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(20*time.Millisecond),
		retry.RetryIf(isBusy),
	)
}

func (s *Store) insertBatchOnce(ctx context.Context, records []sample.Record) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback()

	solStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO solutions
		(rank, p1_win, is_draw, best_move, outcome, best_move_position,
		 game_depth, p1_wins_count, p2_wins_count, draws_count, has_p2_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare solutions insert: %w", err)
	}
	defer solStmt.Close()

	respStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO p2_responses
		(rank, p1_move, p2_best_move, is_p1_win, outcome)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare p2_responses insert: %w", err)
	}
	defer respStmt.Close()

	for _, rec := range records {
		r := rec.Result
		hasP2Data := len(r.P2Responses) > 0
		_, err := solStmt.ExecContext(ctx,
			rec.Rank, r.IsP1Win, r.IsDraw, r.BestMove, r.Outcome.String(),
			r.BestMovePosition, r.GameDepth, r.P1WinsCount, r.P2WinsCount,
			r.DrawsCount, hasP2Data)
		if err != nil {
			return fmt.Errorf("store: insert solution rank=%d: %w", rec.Rank, err)
		}

		for _, pr := range r.P2Responses {
			_, err := respStmt.ExecContext(ctx,
				rec.Rank, pr.P1Move, pr.P2BestMove, pr.IsP1Win, pr.Outcome.String())
			if err != nil {
				return fmt.Errorf("store: insert p2_response rank=%d move=%d: %w", rec.Rank, pr.P1Move, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "busy") || strings.Contains(msg, "locked")
}

// SolvedCount returns the number of rows in the solutions table.
func SolvedCount(ctx context.Context, path string) (int64, error) {
	db, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var n int64
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count solutions: %w", err)
	}
	return n, nil
}
