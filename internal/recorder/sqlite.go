package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists prediction history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			ticker     TEXT NOT NULL,
			label      TEXT,
			direction  TEXT,
			confidence REAL,
			close      REAL,
			dispatched INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_ts ON predictions(timestamp)`,

		`CREATE TABLE IF NOT EXISTS skipped_runs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			ticker    TEXT NOT NULL,
			reason    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_skipped_ts ON skipped_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPrediction(rec *PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dispatched := 0
	if rec.Dispatched {
		dispatched = 1
	}
	_, err := r.db.Exec(`INSERT INTO predictions
		(timestamp, ticker, label, direction, confidence, close, dispatched)
		VALUES (?,?,?,?,?,?,?)`,
		rec.Time.Unix(), rec.Ticker, rec.Label, rec.Direction,
		rec.Confidence, rec.Close, dispatched,
	)
	return err
}

func (r *SQLiteRecorder) RecordSkip(rec *SkipRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO skipped_runs
		(timestamp, ticker, reason)
		VALUES (?,?,?)`,
		rec.Time.Unix(), rec.Ticker, rec.Reason,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
