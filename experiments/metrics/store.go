package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"colduel/game"

	_ "modernc.org/sqlite"
)

// Store keeps game records of every experiment run in a local SQLite database.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS game_records (
	run_id      TEXT    NOT NULL,
	experiment  TEXT    NOT NULL,
	game_id     INTEGER NOT NULL,
	agent1      INTEGER NOT NULL,
	agent2      INTEGER NOT NULL,
	condition1  TEXT    NOT NULL,
	column1     TEXT    NOT NULL,
	condition2  TEXT    NOT NULL,
	column2     TEXT    NOT NULL,
	winner      INTEGER NOT NULL,
	start_time  TEXT    NOT NULL,
	duration_ns INTEGER NOT NULL,
	hash        TEXT    NOT NULL,
	PRIMARY KEY (run_id, game_id)
);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGameRecords stores the records of one run in a single transaction.
func (s *Store) SaveGameRecords(ctx context.Context, runID, experiment string, records []GameRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO game_records (run_id, experiment, game_id, agent1, agent2, condition1, column1, condition2, column2, winner, start_time, duration_ns, hash)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			runID, experiment, r.ID, r.Agent1, r.Agent2,
			r.Victory1.Condition.String(), string(r.Victory1.Column),
			r.Victory2.Condition.String(), string(r.Victory2.Column),
			r.Winner, r.StartTime.UTC().Format(time.RFC3339Nano), r.Duration.Nanoseconds(),
			fmt.Sprintf("%016x", uint64(r.Hash)),
		)
		if err != nil {
			return fmt.Errorf("failed to insert game %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game records: %w", err)
	}
	return nil
}

// GameRecords loads the records of one run ordered by game.
func (s *Store) GameRecords(ctx context.Context, runID string) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT game_id, agent1, agent2, condition1, column1, condition2, column2, winner, start_time, duration_ns
FROM game_records WHERE run_id = ? ORDER BY game_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var cond1, col1, cond2, col2, start string
		var duration int64
		if err := rows.Scan(&r.ID, &r.Agent1, &r.Agent2, &cond1, &col1, &cond2, &col2, &r.Winner, &start, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan game record: %w", err)
		}
		if r.Victory1.Condition, err = game.ParseCondition(cond1); err != nil {
			return nil, err
		}
		if r.Victory2.Condition, err = game.ParseCondition(cond2); err != nil {
			return nil, err
		}
		r.Victory1.Column, r.Victory2.Column = game.Column(col1), game.Column(col2)
		if r.StartTime, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, fmt.Errorf("failed to parse start time: %w", err)
		}
		r.Duration = time.Duration(duration)
		r.EndTime = r.StartTime.Add(r.Duration)
		records = append(records, r)
	}
	return records, rows.Err()
}
