package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/cpd"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/metrics"
)

// Skip reasons reported in FileOutcome.Skipped.
const (
	SkipUnknownLanguage = lint.SkipUnknownLanguage
	SkipLanguage        = lint.SkipLanguage
	SkipGenerated       = lint.SkipGenerated
)

// Runner orchestrates multi-file analysis using a lint.Engine.
type Runner struct {
	// Engine converts and checks each file.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
// It returns a deterministic collection of FileOutcome values, aggregate
// stats and metrics, and the copy-paste blocks when detection is enabled.
//
// A file that cannot be read, or whose analysis fails, is recorded in its
// outcome; Run itself fails only on discovery errors and cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	var detector *cpd.Detector
	if cfg := opts.Config; cfg != nil && cfg.CPD.Enabled {
		detector = cpd.NewDetector(cfg.CPDMinTokens())
	}

	pipeline := &lint.Pipeline{
		Engine:      r.Engine,
		MaxFileSize: opts.maxFileSize(),
		Languages:   opts.Languages,
	}

	// Each worker writes its own slot, so outcomes keep discovery order.
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			outcomes[i] = r.analyze(groupCtx, pipeline, path, detector)
			return nil
		})
	}
	waitErr := group.Wait()

	for _, outcome := range outcomes {
		if outcome.Path != "" {
			result.accumulate(outcome)
		}
	}
	if detector != nil {
		result.Duplications = detector.Detect()
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesAnalyzed, result.Stats.FilesAnalyzed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
		logging.FieldDuplications, len(result.Duplications),
		logging.FieldJobs, jobs,
	)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	if waitErr != nil {
		return result, waitErr
	}
	return result, nil
}

// analyze reads, detects and analyzes one file.
func (r *Runner) analyze(ctx context.Context, pipeline *lint.Pipeline, path string, detector *cpd.Detector) FileOutcome {
	outcome := FileOutcome{Path: path}

	processed, err := pipeline.ProcessFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Language = processed.Language
	if processed.Skipped {
		outcome.Skipped = processed.SkipReason
		return outcome
	}

	result := processed.FileResult
	outcome.Result = result
	outcome.Metrics = metrics.Compute(result.File)

	if detector != nil && result.File != nil {
		detector.Add(path, cpd.Tokens(result.File))
	}
	return outcome
}
