// Package store persists run checkpoints so an interrupted scan can resume
// without reprocessing or re-emitting records for already-seen filenames:
// a single-file, WAL-mode database reached through modernc.org/sqlite,
// storing the checkpoint payload as a JSON blob keyed by run id.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// runKey is the fixed checkpoint key: one run per process invocation, no
// multi-tenant keying needed for this tool.
const runKey = "prospect-matcher-run"

// CheckpointStore is a SQLite-backed store for a single run's resume state.
type CheckpointStore struct {
	db *sql.DB
}

// Open opens (creating if absent) a SQLite checkpoint database at path,
// configured for WAL mode.
func Open(path string) (*CheckpointStore, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=busy_timeout(30000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "checkpoint store: open")
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "checkpoint store: ping")
	}

	if _, err := db.Exec(migration); err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "checkpoint store: migrate")
	}
	if _, err := db.Exec(dlqMigration); err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "checkpoint store: migrate dlq")
	}

	return &CheckpointStore{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS checkpoints (
	run_key    TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Close closes the underlying database handle.
func (s *CheckpointStore) Close() error {
	return s.db.Close()
}

// Save persists the current run state. Called every N filings.
func (s *CheckpointStore) Save(ctx context.Context, cp model.RunCheckpoint) error {
	cp.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cp)
	if err != nil {
		return eris.Wrap(err, "checkpoint store: marshal")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkpoints (run_key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(run_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		runKey, string(data), cp.UpdatedAt,
	)
	return eris.Wrap(err, "checkpoint store: save")
}

// Load returns the persisted checkpoint, or ok=false if none exists.
func (s *CheckpointStore) Load(ctx context.Context) (model.RunCheckpoint, bool, error) {
	var cp model.RunCheckpoint
	row := s.db.QueryRowContext(ctx, `SELECT data FROM checkpoints WHERE run_key = ?`, runKey)
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return cp, false, nil
		}
		return cp, false, eris.Wrap(err, "checkpoint store: load")
	}
	if err := json.Unmarshal([]byte(data), &cp); err != nil {
		return cp, false, eris.Wrap(err, "checkpoint store: unmarshal")
	}
	return cp, true, nil
}

// Clear removes the persisted checkpoint, called on successful run
// completion so a future invocation starts fresh.
func (s *CheckpointStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE run_key = ?`, runKey)
	return eris.Wrap(err, "checkpoint store: clear")
}
