// Package storage provides SQLite-based persistence for finished-run
// summaries. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Live game state is never persisted; a new session always
// starts fresh from the catalog.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunSummary records the outcome of one finished session.
type RunSummary struct {
	ID                 int64
	DurationSecs       int
	GoldEarned         float64
	TotalClicks        int64
	UpgradesPurchased  int64
	AchievementsEarned int
	CreatedAt          time.Time
}

// LifetimeStats aggregates across all recorded runs.
type LifetimeStats struct {
	Runs        int
	TotalGold   float64
	TotalClicks int64
	BestGold    float64
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			duration_secs INTEGER NOT NULL,
			gold_earned REAL NOT NULL,
			total_clicks INTEGER NOT NULL,
			upgrades_purchased INTEGER NOT NULL,
			achievements_earned INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(gold_earned DESC);

		CREATE TABLE IF NOT EXISTS achievement_unlocks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_unlocks_run ON achievement_unlocks(run_id);
		CREATE INDEX IF NOT EXISTS idx_unlocks_name ON achievement_unlocks(name);
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

// SaveRun records a finished run and the achievements it earned.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run RunSummary, achievements []string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after successful commit

	result, err := tx.Exec(
		`INSERT INTO runs (duration_secs, gold_earned, total_clicks, upgrades_purchased, achievements_earned)
		 VALUES (?, ?, ?, ?, ?)`,
		run.DurationSecs, run.GoldEarned, run.TotalClicks, run.UpgradesPurchased, len(achievements),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, name := range achievements {
		if _, err := tx.Exec(
			"INSERT INTO achievement_unlocks (run_id, name) VALUES (?, ?)",
			id, name,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save achievement unlock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs ordered by gold earned descending.
func (s *Store) TopRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, duration_secs, gold_earned, total_clicks, upgrades_purchased, achievements_earned, created_at
		 FROM runs
		 ORDER BY gold_earned DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt any
		if err := rows.Scan(&r.ID, &r.DurationSecs, &r.GoldEarned, &r.TotalClicks,
			&r.UpgradesPurchased, &r.AchievementsEarned, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = scanTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the run with the most gold earned, or nil if none exist.
func (s *Store) BestRun() (*RunSummary, error) {
	var r RunSummary
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, duration_secs, gold_earned, total_clicks, upgrades_purchased, achievements_earned, created_at
		 FROM runs
		 ORDER BY gold_earned DESC
		 LIMIT 1`,
	).Scan(&r.ID, &r.DurationSecs, &r.GoldEarned, &r.TotalClicks,
		&r.UpgradesPurchased, &r.AchievementsEarned, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	r.CreatedAt = scanTime(createdAt)
	return &r, nil
}

// Stats retrieves lifetime aggregates across all runs.
func (s *Store) Stats() (LifetimeStats, error) {
	var stats LifetimeStats

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(gold_earned), 0), COALESCE(SUM(total_clicks), 0), COALESCE(MAX(gold_earned), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.TotalGold, &stats.TotalClicks, &stats.BestGold)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get lifetime stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = scanTime(lastPlayed)
	}

	return stats, nil
}

// UnlockCounts returns how many runs have earned each achievement,
// keyed by achievement name.
func (s *Store) UnlockCounts() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT name, COUNT(*) FROM achievement_unlocks GROUP BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[name] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearRuns deletes all recorded runs and their achievement unlocks.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM achievement_unlocks"); err != nil {
		return fmt.Errorf("storage: cannot clear unlocks: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanTime converts a scanned DATETIME value, which the driver may deliver
// as time.Time or string.
func scanTime(v any) time.Time {
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
