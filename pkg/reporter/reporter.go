// Package reporter formats analysis results for terminals and tools.
package reporter

import (
	"cmp"
	"context"
	"fmt"

	"github.com/yaklabco/goslang/pkg/analysis"
	"github.com/yaklabco/goslang/pkg/runner"
)

// Reporter formats and writes analysis results.
type Reporter interface {
	// Report writes result and returns the number of issues it contained.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Renderer writes an aggregated report. Renderers hold no state between
// calls.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

// renderers builds the Renderer behind each aggregated format. Text output
// streams per file and is not listed.
//
//nolint:gochecknoglobals // Read-only lookup table.
var renderers = map[Format]func(Options) Renderer{
	FormatTable:   func(o Options) Renderer { return NewTableRenderer(o) },
	FormatJSON:    func(o Options) Renderer { return NewJSONRenderer(o) },
	FormatSARIF:   func(o Options) Renderer { return NewSARIFRenderer(o) },
	FormatSummary: func(o Options) Renderer { return NewSummaryRenderer(o) },
}

// aggregated runs the analysis step before handing the report to a Renderer.
type aggregated struct {
	renderer Renderer
	opts     analysis.Options
}

var _ Reporter = (*aggregated)(nil)

func (a *aggregated) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, a.opts)
	if err := a.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}

// New returns the Reporter for opts.Format. Missing writers and an empty
// format fall back to DefaultOptions.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Format == "" {
		opts.Format = defaults.Format
	}

	if opts.Format == FormatText {
		return NewTextReporter(opts), nil
	}
	build, ok := renderers[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	analysisOpts := analysis.DefaultOptions()
	analysisOpts.RuleFormat = cmp.Or(opts.RuleFormat, analysisOpts.RuleFormat)
	analysisOpts.WorkingDir = opts.WorkingDir
	return &aggregated{renderer: build(opts), opts: analysisOpts}, nil
}
