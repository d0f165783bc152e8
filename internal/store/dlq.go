package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-matcher/internal/resilience"
)

const dlqMigration = `
CREATE TABLE IF NOT EXISTS dead_letter_queue (
	id            TEXT PRIMARY KEY,
	filename      TEXT NOT NULL,
	error         TEXT NOT NULL,
	error_type    TEXT NOT NULL DEFAULT 'permanent',
	failed_phase  TEXT,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_dlq_error_type ON dead_letter_queue(error_type);
`

// RecordFailure logs a filing that could not be read or parsed to the dead
// letter queue, classifying the error as transient or permanent so an
// operator can tell network blips (worth a rerun) from malformed input
// (worth ignoring) apart.
func (s *CheckpointStore) RecordFailure(ctx context.Context, filename, phase string, err error) error {
	entry := resilience.DLQEntry{
		ID:          uuid.NewString(),
		Filename:    filename,
		Error:       err.Error(),
		ErrorType:   resilience.ClassifyError(err),
		FailedPhase: phase,
		CreatedAt:   time.Now().UTC(),
	}

	_, execErr := s.db.ExecContext(ctx,
		`INSERT INTO dead_letter_queue (id, filename, error, error_type, failed_phase, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Filename, entry.Error, entry.ErrorType, entry.FailedPhase, entry.CreatedAt,
	)
	return eris.Wrap(execErr, "checkpoint store: record dlq failure")
}

// ListFailures returns dead-letter entries, optionally filtered by error
// type ("transient" or "permanent"; empty returns all).
func (s *CheckpointStore) ListFailures(ctx context.Context, errorType string) ([]resilience.DLQEntry, error) {
	query := `SELECT id, filename, error, error_type, failed_phase, created_at FROM dead_letter_queue`
	args := []any{}
	if errorType != "" {
		query += ` WHERE error_type = ?`
		args = append(args, errorType)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "checkpoint store: list dlq")
	}
	defer rows.Close()

	var out []resilience.DLQEntry
	for rows.Next() {
		var e resilience.DLQEntry
		var phase sql.NullString
		if err := rows.Scan(&e.ID, &e.Filename, &e.Error, &e.ErrorType, &phase, &e.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "checkpoint store: scan dlq row")
		}
		e.FailedPhase = phase.String
		out = append(out, e)
	}
	return out, eris.Wrap(rows.Err(), "checkpoint store: iterate dlq")
}
