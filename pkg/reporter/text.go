package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yaklabco/goslang/internal/ui/pretty"
	"github.com/yaklabco/goslang/pkg/cpd"
	"github.com/yaklabco/goslang/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to analyze."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	r.reportDuplications(result.Duplications)

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportFile writes the issues and failures of one file and returns the
// number of issues written.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := relativePath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprintf(r.errorWriter(), "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	result := file.Result
	if result == nil || (!result.HasIssues() && !result.HasFailures()) {
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(result.Issues)))

	for i := range result.Failures {
		fmt.Fprint(r.bw, r.styles.FormatFailure(path, &result.Failures[i]))
	}

	for i := range result.Issues {
		issue := &result.Issues[i]
		var sourceLine string
		if r.opts.ShowContext && result.File != nil && issue.Range != nil {
			sourceLine = result.File.Line(issue.Line())
		}
		fmt.Fprint(r.bw, r.styles.FormatIssue(path, issue, sourceLine, r.opts.RuleFormat))
	}

	fmt.Fprintln(r.bw)
	return len(result.Issues)
}

// errorWriter is where unreadable files are reported: ErrorWriter when set,
// the main output otherwise.
func (r *TextReporter) errorWriter() io.Writer {
	if r.opts.ErrorWriter != nil {
		return r.opts.ErrorWriter
	}
	return r.bw
}

// reportDuplications lists the copy-paste blocks, origin first.
func (r *TextReporter) reportDuplications(duplications []cpd.Duplication) {
	if len(duplications) == 0 {
		return
	}

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Duplicated blocks"))
	for _, duplication := range duplications {
		writeDuplication(r.bw, r.styles, duplication, r.opts.WorkingDir)
	}
	fmt.Fprintln(r.bw)
}

func writeDuplication(w io.Writer, styles *pretty.Styles, duplication cpd.Duplication, workDir string) {
	blocks := make([]string, 0, len(duplication.Blocks))
	for _, block := range duplication.Blocks {
		blocks = append(blocks, fmt.Sprintf("%s:%d-%d", relativePath(block.Path, workDir), block.StartLine, block.EndLine))
	}
	fmt.Fprintf(w, "  %s  %s\n",
		styles.Duplication.Render(fmt.Sprintf("%d tokens", duplication.Tokens)),
		strings.Join(blocks, ", "),
	)
}

// relativePath converts path relative to workDir when possible.
func relativePath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
