package output

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/resilience"
)

// Sink accepts a completed run's Match Records. CSVSink and PostgresSink
// both implement it so the pipeline can write to either, or both, without
// caring which.
type Sink interface {
	Write(ctx context.Context, records []model.MatchRecord) error
}

// CSVSink writes the Debug and Client Record CSV files to an output
// directory.
type CSVSink struct {
	DebugPath  string
	ClientPath string
	TeamName   string
}

// Write implements Sink.
func (s CSVSink) Write(_ context.Context, records []model.MatchRecord) error {
	if err := WriteDebugCSV(records, s.DebugPath); err != nil {
		return err
	}
	return WriteClientCSV(records, s.ClientPath, s.TeamName)
}

// PostgresSink bulk-upserts Match Records into Postgres, guarded by a
// circuit breaker (so a down database fails fast across repeated
// checkpoint-interval writes instead of blocking every retry budget) and a
// retry policy for transient connection errors.
type PostgresSink struct {
	pool    *pgxpool.Pool
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
}

// NewPostgresSink wraps a pgx pool with the given circuit breaker and
// retry configuration, attaching the sink's own logging callbacks.
func NewPostgresSink(pool *pgxpool.Pool, retry resilience.RetryConfig, cbCfg resilience.CircuitBreakerConfig) *PostgresSink {
	cbCfg.OnStateChange = func(from, to resilience.CircuitState) {
		zap.L().Warn("postgres sink circuit breaker state change",
			zap.String("from", from.String()), zap.String("to", to.String()))
	}
	retry.OnRetry = resilience.RetryLogger("postgres", "write_match_records")

	return &PostgresSink{
		pool:    pool,
		breaker: resilience.NewCircuitBreaker(cbCfg),
		retry:   retry,
	}
}

// Write implements Sink.
func (s *PostgresSink) Write(ctx context.Context, records []model.MatchRecord) error {
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return resilience.Do(ctx, s.retry, func(ctx context.Context) error {
			_, err := WritePostgres(ctx, s.pool, records)
			return err
		})
	})
	if err != nil {
		return eris.Wrap(err, "output: postgres sink write")
	}
	return nil
}

// MultiSink fans a write out to several sinks, continuing past an
// individual sink's failure so a CSV write still lands if the optional
// Postgres sink is unavailable.
type MultiSink []Sink

// Write implements Sink.
func (m MultiSink) Write(ctx context.Context, records []model.MatchRecord) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.Write(ctx, records); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
