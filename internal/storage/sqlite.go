// Package storage persists finished level results in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Result statuses as stored.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is one finished (or abandoned) attempt at a level.
type Result struct {
	ID        int64
	SessionID string
	LevelID   string
	Status    string
	Score     int
	MovesUsed int
	Seed      int64
	CreatedAt time.Time
}

// Passed reports whether the attempt cleared the level.
func (r Result) Passed() bool { return r.Status == StatusPassed }

// LevelStats aggregates the results of one level.
type LevelStats struct {
	LevelID     string
	Plays       int
	Passes      int
	BestScore   int
	AvgScore    float64
	FewestMoves int // among passes, 0 when never passed
	LastPlayed  time.Time
}

// PassRate returns Passes/Plays, or 0 for an unplayed level.
func (s LevelStats) PassRate() float64 {
	if s.Plays == 0 {
		return 0
	}
	return float64(s.Passes) / float64(s.Plays)
}

// NewSessionID returns an identifier grouping the results of one run.
func NewSessionID() string {
	return uuid.NewString()
}

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			status TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			moves_used INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(level_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(level_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session_id);
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

// SaveResult records r and returns its row ID. An empty session ID gets a
// fresh one.
func (s *Store) SaveResult(r Result) (int64, error) {
	switch r.Status {
	case StatusPassed, StatusFailed, StatusAbandoned:
	default:
		return 0, fmt.Errorf("storage: unknown result status %q", r.Status)
	}
	if r.SessionID == "" {
		r.SessionID = NewSessionID()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, level_id, status, score, moves_used, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.LevelID, r.Status, r.Score, r.MovesUsed, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const resultColumns = `id, session_id, level_id, status, score, moves_used, seed, created_at`

// TopResults returns the best passed results for a level: highest score
// first, fewer moves breaking ties.
func (s *Store) TopResults(levelID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE level_id = ? AND status = ?
		 ORDER BY score DESC, moves_used ASC, id ASC
		 LIMIT ?`,
		levelID, StatusPassed, limit,
	)
}

// LevelResults returns every result for a level, newest first.
func (s *Store) LevelResults(levelID string) ([]Result, error) {
	return s.query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE level_id = ?
		 ORDER BY id DESC`,
		levelID,
	)
}

// RecentResults returns the latest results across all levels.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionResults returns the results of one session in play order.
func (s *Store) SessionResults(sessionID string) ([]Result, error) {
	return s.query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.LevelID, &r.Status, &r.Score, &r.MovesUsed, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestScore returns the highest score of a passed result, or 0.
func (s *Store) BestScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE level_id = ? AND status = ?",
		levelID, StatusPassed,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearResults deletes every result of a level.
func (s *Store) ClearResults(levelID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

const statsColumns = `level_id, COUNT(*),
	COALESCE(SUM(CASE WHEN status = 'passed' THEN 1 ELSE 0 END), 0),
	COALESCE(MAX(CASE WHEN status = 'passed' THEN score END), 0),
	COALESCE(AVG(score), 0),
	COALESCE(MIN(CASE WHEN status = 'passed' THEN moves_used END), 0),
	MAX(created_at)`

// Stats aggregates the results of one level. An unplayed level yields zero
// stats, not an error.
func (s *Store) Stats(levelID string) (*LevelStats, error) {
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE level_id = ? GROUP BY level_id`,
		levelID,
	)
	st, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &LevelStats{LevelID: levelID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	return st, nil
}

// AllStats returns the stats of every level that has results.
func (s *Store) AllStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM results GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.LevelID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(sc scanner) (*LevelStats, error) {
	var st LevelStats
	var lastPlayed any
	if err := sc.Scan(&st.LevelID, &st.Plays, &st.Passes, &st.BestScore, &st.AvgScore, &st.FewestMoves, &lastPlayed); err != nil {
		return nil, err
	}
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}

// parseTime handles both time.Time and the SQLite text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
