package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/goslang/internal/ui/pretty"
	"github.com/yaklabco/goslang/pkg/analysis"
	"github.com/yaklabco/goslang/pkg/metrics"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90 // Width of table separators (same for both tables).
	checkColWidth     = 34 // Width of the check column.
	fileColWidth      = 60 // Width of the file path column (wider for relative paths).
	numColWidth       = 7  // Width of numeric columns.
	warnColWidth      = 9  // Width of warnings column.
	maxCheckLength    = 32 // Maximum characters for check name before truncation.
	maxFilePathLength = 58 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated tables: checks, files,
// metrics and copy-paste blocks.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Issues == 0 && report.Totals.Failures == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
	} else {
		r.renderCheckTable(report.ByCheck)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
		fmt.Fprintln(r.out)
	}

	r.renderMetrics(report.Metrics)
	if report.Totals.Duplications > 0 {
		fmt.Fprintln(r.out)
		r.renderDuplications(report.Duplications)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderCheckTable(checks []analysis.CheckAnalysis) {
	if len(checks) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Checks Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Check", checkColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
		r.styles.TableHeader.Render(padLeft("Info", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, check := range checks {
		name := r.opts.RuleFormat.Label(check.CheckID, check.CheckName)
		if len(name) > maxCheckLength {
			name = name[:maxCheckLength] + "…"
		}

		paddedName := padRight(name, checkColWidth)
		switch {
		case check.Errors > 0:
			paddedName = r.styles.TableErrorRow.Render(paddedName)
		case check.Warnings > 0:
			paddedName = r.styles.TableWarnRow.Render(paddedName)
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s\n",
			paddedName,
			padLeft(strconv.Itoa(check.Issues), numColWidth),
			padLeft(strconv.Itoa(check.Errors), numColWidth),
			padLeft(strconv.Itoa(check.Warnings), warnColWidth),
			padLeft(strconv.Itoa(check.Infos), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	var rows []analysis.FileAnalysis
	for _, file := range files {
		if file.Issues > 0 || file.Failures > 0 {
			rows = append(rows, file)
		}
	}
	if len(rows) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range rows {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		paddedPath := padRight(path, fileColWidth)
		switch {
		case file.Errors > 0 || file.Failures > 0:
			paddedPath = r.styles.TableErrorRow.Render(paddedPath)
		case file.Warnings > 0:
			paddedPath = r.styles.TableWarnRow.Render(paddedPath)
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			paddedPath,
			padLeft(strconv.Itoa(file.Issues), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) renderMetrics(m metrics.FileMetrics) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Metrics"))
	for _, row := range []struct {
		label string
		value int
	}{
		{"Lines of code", m.LinesOfCode},
		{"Comment lines", m.CommentLines},
		{"Functions", m.Functions},
		{"Classes", m.Classes},
		{"Statements", m.Statements},
		{"Complexity", m.Complexity},
		{"Cognitive complexity", m.CognitiveComplexity},
	} {
		fmt.Fprintf(r.out, "  %s %s\n", padRight(row.label+":", 22), r.styles.SummaryValue.Render(strconv.Itoa(row.value)))
	}
}

func (r *SummaryRenderer) renderDuplications(duplications []analysis.DuplicationEntry) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Duplicated blocks"))
	for _, duplication := range duplications {
		blocks := make([]string, 0, len(duplication.Blocks))
		for _, block := range duplication.Blocks {
			blocks = append(blocks, fmt.Sprintf("%s:%d-%d", block.FilePath, block.StartLine, block.EndLine))
		}
		fmt.Fprintf(r.out, "  %s  %s\n",
			r.styles.Duplication.Render(fmt.Sprintf("%d tokens", duplication.Tokens)),
			strings.Join(blocks, ", "),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	summary := counted(totals.Issues, "issue", "issues")

	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(counted(totals.Errors, "error", "errors")))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(counted(totals.Warnings, "warning", "warnings")))
	}
	if totals.Infos > 0 {
		severityParts = append(severityParts, r.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	if len(severityParts) > 0 {
		summary += " (" + strings.Join(severityParts, ", ") + ")"
	}

	summary += " in " + counted(totals.FilesWithIssues, "file", "files")

	if totals.Failures > 0 {
		summary += ", " + r.styles.Failure.Render(counted(totals.Failures, "failure", "failures"))
	}
	if totals.Duplications > 0 {
		summary += ", " + counted(totals.Duplications, "duplicated block", "duplicated blocks")
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total:")+" "+summary)
}

func counted(n int, singular, many string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + many
}
