// Package storage provides SQLite-based persistence for finished game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only completed games are recorded; game state itself is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result represents a single finished game.
type Result struct {
	ID        string // UUID, assigned by SaveResult when empty
	DeckID    string
	Elapsed   time.Duration
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			deck_id TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_deck_id ON results(deck_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(deck_id, elapsed_ms, moves);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.DeckID == "" {
		return "", errors.New("storage: cannot save result: empty deck id")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		"INSERT INTO results (id, deck_id, elapsed_ms, moves) VALUES (?, ?, ?, ?)",
		r.ID, r.DeckID, r.Elapsed.Milliseconds(), r.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r.ID, nil
}

// BestResults retrieves the best N results for the given deck.
// Results are ordered by time, then by moves, then oldest first.
func (s *Store) BestResults(deckID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, deck_id, elapsed_ms, moves, created_at
		 FROM results
		 WHERE deck_id = ?
		 ORDER BY elapsed_ms ASC, moves ASC, created_at ASC
		 LIMIT ?`,
		deckID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r         Result
			elapsedMS int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.DeckID, &elapsedMS, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for the given deck.
func (s *Store) ClearResults(deckID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE deck_id = ?", deckID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// DeckStats contains aggregated statistics for a deck.
type DeckStats struct {
	DeckID      string
	GamesCount  int
	BestElapsed time.Duration
	FewestMoves int
	AvgMoves    float64
	LastPlayed  time.Time
}

// GetDeckStats retrieves aggregated statistics for a specific deck.
func (s *Store) GetDeckStats(deckID string) (*DeckStats, error) {
	stats := &DeckStats{DeckID: deckID}

	var bestMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(elapsed_ms), 0), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM results WHERE deck_id = ?`,
		deckID,
	).Scan(&stats.GamesCount, &bestMS, &stats.FewestMoves, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get deck stats: %w", err)
	}
	stats.BestElapsed = time.Duration(bestMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllDeckStats retrieves statistics for all decks that have results.
func (s *Store) GetAllDeckStats() (map[string]*DeckStats, error) {
	rows, err := s.db.Query(
		`SELECT deck_id, COUNT(*), MIN(elapsed_ms), MIN(moves), AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY deck_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all deck stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DeckStats)
	for rows.Next() {
		var (
			ds         DeckStats
			bestMS     int64
			lastPlayed any
		)
		if err := rows.Scan(&ds.DeckID, &ds.GamesCount, &bestMS, &ds.FewestMoves, &ds.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ds.BestElapsed = time.Duration(bestMS) * time.Millisecond
		ds.LastPlayed = parseTime(lastPlayed)
		stats[ds.DeckID] = &ds
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
