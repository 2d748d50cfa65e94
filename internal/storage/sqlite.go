// Package storage provides SQLite-based persistence for the run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/game"
)

// ErrRunNotFound is returned when a journal entry does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunEntry is a journaled run.
type RunEntry struct {
	ID     int64
	Player string // local user or SSH user name
	game.RunSummary
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			cause TEXT NOT NULL,
			jumps TEXT NOT NULL DEFAULT '',
			started_at_ms INTEGER NOT NULL,
			ended_at_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_ended ON runs(ended_at_ms DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun journals a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(player string, run game.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (player, seed, ticks, score, cause, jumps, started_at_ms, ended_at_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		player,
		run.Seed,
		run.Ticks,
		run.Score,
		run.Cause.String(),
		encodeJumps(run.Jumps),
		run.StartedAt.UnixMilli(),
		run.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, player, seed, ticks, score, cause, jumps, started_at_ms, ended_at_ms`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunEntry, error) {
	var (
		e                RunEntry
		cause, jumps     string
		started, stopped int64
	)
	if err := row.Scan(&e.ID, &e.Player, &e.Seed, &e.Ticks, &e.Score, &cause, &jumps, &started, &stopped); err != nil {
		return RunEntry{}, err
	}

	decoded, err := decodeJumps(jumps)
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: run %d has corrupt jumps: %w", e.ID, err)
	}

	e.Cause = game.ParseCause(cause)
	e.Jumps = decoded
	e.StartedAt = time.UnixMilli(started)
	e.EndedAt = time.UnixMilli(stopped)
	return e, nil
}

// Run retrieves a journal entry by ID.
func (s *Store) Run(id int64) (RunEntry, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return e, nil
}

// RecentRuns retrieves the most recently finished runs, newest first.
// A non-empty player restricts the result to that player.
func (s *Store) RecentRuns(player string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if player != "" {
		query += ` WHERE player = ?`
		args = append(args, player)
	}
	query += ` ORDER BY ended_at_ms DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRuns removes runs that ended before cutoff and returns how many were deleted.
func (s *Store) DeleteRuns(before time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM runs WHERE ended_at_ms < ?`, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete runs: %w", err)
	}
	return res.RowsAffected()
}

// Recorder returns a game.Recorder that journals runs under the given player name.
func (s *Store) Recorder(player string) game.Recorder {
	return recorder{store: s, player: player}
}

type recorder struct {
	store  *Store
	player string
}

// RecordRun implements game.Recorder.
func (r recorder) RecordRun(run game.RunSummary) error {
	_, err := r.store.SaveRun(r.player, run)
	return err
}

func encodeJumps(jumps []int) string {
	parts := make([]string, len(jumps))
	for i, j := range jumps {
		parts[i] = strconv.Itoa(j)
	}
	return strings.Join(parts, ",")
}

func decodeJumps(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	jumps := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		jumps[i] = v
	}
	return jumps, nil
}
