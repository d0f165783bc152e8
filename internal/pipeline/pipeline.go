// Package pipeline orchestrates a full run: load prospects, build the
// shared-immutable index and pattern automaton once, then scan filings in
// parallel, fusing, classifying, and risk-scoring each one into Match
// Records. Build-once/single-writer, then errgroup.WithContext + SetLimit
// over filings, with counters merged at the end of the run.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/prospect-matcher/internal/classifier"
	"github.com/sells-group/prospect-matcher/internal/edgar/formparse"
	"github.com/sells-group/prospect-matcher/internal/fprisk"
	"github.com/sells-group/prospect-matcher/internal/matcher"
	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/patternengine"
	"github.com/sells-group/prospect-matcher/internal/prospect"
	"github.com/sells-group/prospect-matcher/internal/report"
	"github.com/sells-group/prospect-matcher/internal/store"
)

// softFilingBudget is the advisory per-filing time budget: breaches are
// logged, never aborted.
const softFilingBudget = 30 * time.Second

// Options configures one run.
type Options struct {
	ProspectsPath      string
	FilingsDir         string
	Recursive          bool
	MaxFiles           int // 0 = unlimited
	Workers            int // 0 = GOMAXPROCS
	CheckpointInterval int // save every N filings; 0 disables
	Checkpoint         *store.CheckpointStore
	DLQ                *store.CheckpointStore // same handle, recorded separately for clarity at call sites
}

// Result is everything a run produced.
type Result struct {
	Matches []model.MatchRecord
	Summary *report.Summary
}

// Run loads the prospect list, builds the index and automaton once, and
// scans every filing under opts.FilingsDir, returning the fused,
// classified, risk-scored Match Records and a run summary.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := zap.L().With(zap.String("component", "pipeline"))

	prospectsFile, err := os.Open(opts.ProspectsPath)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: open prospects file")
	}
	defer prospectsFile.Close()

	idx, prospects, err := prospect.LoadCSV(ctx, prospectsFile)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load prospects")
	}
	log.Info("loaded prospects", zap.Int("count", len(prospects)))

	patterns := prospect.BuildPatterns(prospects)
	engine := patternengine.Build(patterns)
	log.Info("built pattern engine", zap.Int("patterns", len(patterns)), zap.Int("longest", engine.LongestPattern()))

	filenames, err := discoverFilings(opts.FilingsDir, opts.Recursive)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: discover filings")
	}

	resume, resumed, err := loadResume(ctx, opts.Checkpoint)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load checkpoint")
	}
	var matches []model.MatchRecord
	if resumed {
		matches = resume.Matches
		filenames = remaining(filenames, resume.RemainingFilenames, resumed)
		log.Info("resumed from checkpoint", zap.Int("already_processed", resume.ProcessedCount), zap.Int("remaining", len(filenames)))
	}

	if opts.MaxFiles > 0 && len(filenames) > opts.MaxFiles {
		filenames = filenames[:opts.MaxFiles]
	}

	startedAt := time.Now().UTC()

	// Each filing task builds its own partial summary; the partials are
	// merged into the final summary only after every worker has finished.
	// The mutex below serializes just the match list, the done set, the
	// checkpoint, and the partial slice, never summary counting itself.
	var (
		mu        sync.Mutex
		processed int
		partials  []*report.Summary
		done      = make(map[string]bool, len(filenames))
	)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, filename := range filenames {
		filename := filename
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			records, parseErr := processFiling(idx, engine, filename)

			partial := report.NewSummary()
			partial.FilesProcessed = 1
			if parseErr != nil {
				partial.ParseErrors = 1
				log.Warn("filing failed", zap.String("filename", filename), zap.Error(parseErr))
			}
			for _, r := range records {
				partial.AddRecord(r)
			}

			mu.Lock()
			defer mu.Unlock()

			if parseErr != nil && opts.DLQ != nil {
				if err := opts.DLQ.RecordFailure(gctx, filename, "read_or_parse", parseErr); err != nil {
					log.Error("failed to record dlq entry", zap.Error(err))
				}
			}
			matches = append(matches, records...)
			partials = append(partials, partial)
			processed++
			done[filename] = true

			if opts.Checkpoint != nil && opts.CheckpointInterval > 0 && processed%opts.CheckpointInterval == 0 {
				var rest []string
				for _, f := range filenames {
					if !done[f] {
						rest = append(rest, f)
					}
				}
				cp := model.RunCheckpoint{
					ProcessedCount:     processed,
					Matches:            matches,
					RemainingFilenames: rest,
				}
				if err := opts.Checkpoint.Save(gctx, cp); err != nil {
					log.Error("checkpoint save failed", zap.Error(err))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !eris.Is(err, context.Canceled) {
		return nil, eris.Wrap(err, "pipeline: run")
	}

	summary := report.NewSummary()
	summary.StartedAt = startedAt
	for _, partial := range partials {
		summary.Merge(partial)
	}
	summary.FinishedAt = time.Now().UTC()

	if opts.Checkpoint != nil {
		if err := opts.Checkpoint.Clear(ctx); err != nil {
			log.Warn("checkpoint clear failed", zap.Error(err))
		}
	}

	return &Result{Matches: matches, Summary: summary}, nil
}

// processFiling runs one filing end-to-end: read -> parse -> fuse ->
// classify -> risk-score. A soft 30s budget is advisory only: a breach is
// logged, the result is still returned.
func processFiling(idx *prospect.Index, engine *patternengine.Engine, filename string) ([]model.MatchRecord, error) {
	start := time.Now()
	defer func() {
		if elapsed := time.Since(start); elapsed > softFilingBudget {
			zap.L().Warn("filing exceeded soft time budget",
				zap.String("filename", filename), zap.Duration("elapsed", elapsed))
		}
	}()

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, eris.Wrap(err, "read filing")
	}

	pf := formparse.Parse(filepath.Base(filename), string(raw))

	records := matcher.BuildMatchRecords(idx, engine, filepath.Base(filename), &pf)
	for i, r := range records {
		r = classifier.Annotate(r, pf.Envelope.FormClass, pf.Transactions, pf.Flags, pf.Alerts)
		r = fprisk.Annotate(r)
		records[i] = r
	}
	return records, nil
}

// defaultWorkers falls back to GOMAXPROCS rather than an arbitrary fixed
// constant.
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

func discoverFilings(dir string, recursive bool) ([]string, error) {
	var out []string
	walk := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".txt" {
			out = append(out, path)
		}
		return nil
	}

	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func loadResume(ctx context.Context, cp *store.CheckpointStore) (model.RunCheckpoint, bool, error) {
	if cp == nil {
		return model.RunCheckpoint{}, false, nil
	}
	return cp.Load(ctx)
}

// remaining intersects the freshly discovered filenames with the
// checkpoint's remaining-filenames list, so already-processed files are
// skipped. Files added to the directory after the checkpoint was written
// are not on that list and are skipped as well.
func remaining(discovered, checkpointRemaining []string, resumed bool) []string {
	if !resumed {
		return discovered
	}
	allowed := make(map[string]bool, len(checkpointRemaining))
	for _, f := range checkpointRemaining {
		allowed[f] = true
	}
	var out []string
	for _, f := range discovered {
		if allowed[f] {
			out = append(out, f)
		}
	}
	return out
}
