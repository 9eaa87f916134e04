// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/square-catch/internal/game"
)

// timeLayout is how timestamps are written to and read from SQLite.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single leaderboard row.
type ScoreEntry struct {
	ID        int64
	RoundID   string
	Name      string
	Score     int
	CreatedAt time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS top_players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_top_players_score ON top_players(score DESC, id);
		CREATE INDEX IF NOT EXISTS idx_top_players_name ON top_players(name);
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

// SaveScore appends a finished round. A zero createdAt uses the database
// clock. Returns the ID of the inserted record.
func (s *Store) SaveScore(roundID, name string, score int, createdAt time.Time) (int64, error) {
	var (
		result sql.Result
		err    error
	)
	if createdAt.IsZero() {
		result, err = s.db.Exec(
			"INSERT INTO top_players (round_id, name, score) VALUES (?, ?, ?)",
			roundID, name, score,
		)
	} else {
		result, err = s.db.Exec(
			"INSERT INTO top_players (round_id, name, score, created_at) VALUES (?, ?, ?, ?)",
			roundID, name, score, createdAt.UTC().Format(timeLayout),
		)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores across all players.
// Results are ordered by score descending; equal scores keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, name, score, created_at
		 FROM top_players
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// TopScoresFor retrieves the top N scores of one player.
func (s *Store) TopScoresFor(name string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, name, score, created_at
		 FROM top_players
		 WHERE name = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores for %q: %w", name, err)
	}
	return scanEntries(rows)
}

// AllScores retrieves every recorded round, best first.
func (s *Store) AllScores() ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, round_id, name, score, created_at
		 FROM top_players
		 ORDER BY score DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// scanEntries reads leaderboard rows and closes rows.
func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Name, &e.Score, &createdAt); err != nil {
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

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score ever recorded.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM top_players").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Players returns the distinct player names, sorted.
func (s *Store) Players() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT name FROM top_players ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// ClearScores deletes every recorded round.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM top_players")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for all rounds or one player.
type Stats struct {
	Name       string // Empty for all players
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetStats aggregates rounds for name, or for everyone if name is empty.
func (s *Store) GetStats(name string) (*Stats, error) {
	stats := &Stats{Name: name}

	where, args := "", []any{}
	if name != "" {
		where, args = "WHERE name = ?", []any{name}
	}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM top_players `+where,
		args...,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM top_players `+where+` ORDER BY created_at DESC, id DESC LIMIT 1`,
		args...,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Record implements game.Leaderboard.
func (s *Store) Record(entry game.LeaderboardEntry) error {
	_, err := s.SaveScore(entry.RoundID, entry.Name, entry.Score, entry.CreatedAt)
	return err
}

// Top implements game.Leaderboard.
func (s *Store) Top(limit int) ([]game.LeaderboardEntry, error) {
	scores, err := s.TopScores(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]game.LeaderboardEntry, len(scores))
	for i, sc := range scores {
		entries[i] = game.LeaderboardEntry{
			RoundID:   sc.RoundID,
			Name:      sc.Name,
			Score:     sc.Score,
			CreatedAt: sc.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure Store implements game.Leaderboard
var _ game.Leaderboard = (*Store)(nil)
