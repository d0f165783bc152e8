package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-matcher/internal/config"
	"github.com/sells-group/prospect-matcher/internal/output"
	"github.com/sells-group/prospect-matcher/internal/pipeline"
	"github.com/sells-group/prospect-matcher/internal/resilience"
	"github.com/sells-group/prospect-matcher/internal/store"
)

// cliError carries an explicit exit code (1 = argument error, 2 = I/O
// error) through cobra's error-returning RunE without cobra itself
// dictating the code.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }
func (e *cliError) ExitCode() int { return e.code }

func argError(err error) error { return &cliError{code: exitArgError, err: err} }
func ioError(err error) error  { return &cliError{code: exitIOError, err: err} }

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan a directory of filings against a prospect list and write match reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return argError(err)
		}

		if _, err := os.Stat(cfg.Prospects); err != nil {
			return ioError(eris.Wrapf(err, "prospects file %q", cfg.Prospects))
		}
		if info, err := os.Stat(cfg.Filings); err != nil || !info.IsDir() {
			if err == nil {
				err = eris.New("not a directory")
			}
			return ioError(eris.Wrapf(err, "filings directory %q", cfg.Filings))
		}
		if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
			return ioError(eris.Wrapf(err, "output directory %q", cfg.Out))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := zap.L()

		checkpointPath := cfg.Checkpoint.Path
		if checkpointPath == "" {
			checkpointPath = filepath.Join(cfg.Out, "checkpoint.sqlite")
		}
		cp, err := store.Open(checkpointPath)
		if err != nil {
			return ioError(eris.Wrap(err, "open checkpoint store"))
		}
		defer cp.Close()

		sink, closeSink, err := buildSink(ctx, cfg)
		if err != nil {
			return ioError(err)
		}
		defer closeSink()

		result, err := pipeline.Run(ctx, pipeline.Options{
			ProspectsPath:      cfg.Prospects,
			FilingsDir:         cfg.Filings,
			Recursive:          cfg.Recursive,
			MaxFiles:           cfg.MaxFiles,
			CheckpointInterval: cfg.Checkpoint.Interval,
			Checkpoint:         cp,
			DLQ:                cp,
		})
		if err != nil {
			return eris.Wrap(err, "run")
		}

		if err := sink.Write(ctx, result.Matches); err != nil {
			return eris.Wrap(err, "write reports")
		}

		log.Info("run complete",
			zap.Int("files_processed", result.Summary.FilesProcessed),
			zap.Int("parse_errors", result.Summary.ParseErrors),
			zap.Int("matches_total", result.Summary.MatchesTotal),
			zap.Int("verified", result.Summary.Verified),
			zap.Int("unverified", result.Summary.Unverified),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "processed %d filings, %d matches, %d parse errors\n",
			result.Summary.FilesProcessed, result.Summary.MatchesTotal, result.Summary.ParseErrors)

		return nil
	},
}

// buildSink assembles the CSV sink (always on) plus an optional Postgres
// sink when cfg.Postgres.DatabaseURL is set, returning a cleanup func that
// closes any pool it opened.
func buildSink(ctx context.Context, cfg *config.Config) (output.Sink, func(), error) {
	csvSink := output.CSVSink{
		DebugPath:  filepath.Join(cfg.Out, "debug_records.csv"),
		ClientPath: filepath.Join(cfg.Out, "client_records.csv"),
		TeamName:   cfg.TeamName,
	}

	if cfg.Postgres.DatabaseURL == "" {
		return csvSink, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.DatabaseURL)
	if err != nil {
		return nil, nil, eris.Wrap(err, "connect postgres")
	}

	retry := resilience.FromRetryConfig(
		cfg.Postgres.RetryMaxAttempts,
		cfg.Postgres.RetryInitialBackoffMs,
		cfg.Postgres.RetryMaxBackoffMs,
		0, -1,
	)
	cbCfg := resilience.FromCircuitConfig(
		cfg.Postgres.CircuitFailureThreshold,
		cfg.Postgres.CircuitResetTimeoutSecs,
	)

	multi := output.MultiSink{csvSink, output.NewPostgresSink(pool, retry, cbCfg)}
	return multi, pool.Close, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
