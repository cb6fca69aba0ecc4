// Package storage provides SQLite-based persistence for scores and round
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-arena/internal/snake"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one player's score in one round.
type ScoreEntry struct {
	ID        int64
	RoundID   string
	ModeID    string
	Player    string
	Score     int
	Cause     string
	CreatedAt time.Time
}

// RoundEntry is a persisted round summary.
type RoundEntry struct {
	ID            int64
	RoundID       string
	ModeID        string
	Ticks         uint64
	Apples        int
	FinalInterval time.Duration
	CreatedAt     time.Time
}

// ModeStats contains aggregated statistics for a game mode.
type ModeStats struct {
	ModeID     string
	Rounds     int
	HighScore  int
	AvgScore   float64
	Apples     int64
	LastPlayed time.Time
}

const sqliteTime = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			mode_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			apples INTEGER NOT NULL DEFAULT 0,
			final_interval_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode_id ON rounds(mode_id);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL,
			mode_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode_id ON scores(mode_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode_id, score DESC);
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

// SaveRoundResult records a round and every player's score in one
// transaction. Saving the same round twice is an error.
func (s *Store) SaveRoundResult(res snake.RoundResult) error {
	if res.RoundID == "" {
		return errors.New("storage: round has no id")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`INSERT INTO rounds (round_id, mode_id, ticks, apples, final_interval_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		res.RoundID, res.ModeID, int64(res.Ticks), res.Apples, res.FinalInterval.Milliseconds(),
	); err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}

	for _, p := range res.Players {
		if _, err := tx.Exec(
			`INSERT INTO scores (round_id, mode_id, player, score, cause) VALUES (?, ?, ?, ?, ?)`,
			res.RoundID, res.ModeID, p.Name, p.Score, p.Cause.String(),
		); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return nil
}

var _ snake.ResultSaver = (*Store)(nil)

// TopScores retrieves the top N scores for a mode, highest first.
func (s *Store) TopScores(modeID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, mode_id, player, score, cause, created_at
		 FROM scores
		 WHERE mode_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		modeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.ModeID, &e.Player, &e.Score, &e.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for a mode, 0 if none.
func (s *Store) HighScore(modeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode_id = ?",
		modeID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RecentRounds retrieves the most recent rounds across all modes.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, mode_id, ticks, apples, final_interval_ms, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var ticks, intervalMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.ModeID, &ticks, &e.Apples, &intervalMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.FinalInterval = time.Duration(intervalMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes all rounds and scores for a mode.
func (s *Store) ClearScores(modeID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE mode_id = ?", modeID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM rounds WHERE mode_id = ?", modeID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// ModeStats retrieves aggregated statistics for a mode.
func (s *Store) ModeStats(modeID string) (*ModeStats, error) {
	stats := &ModeStats{ModeID: modeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(apples), 0) FROM rounds WHERE mode_id = ?`,
		modeID,
	).Scan(&stats.Rounds, &stats.Apples)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0), COALESCE(AVG(score), 0) FROM scores WHERE mode_id = ?`,
		modeID,
	).Scan(&stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE mode_id = ? ORDER BY id DESC LIMIT 1`,
		modeID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
