package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/goslang/pkg/analysis"
	"github.com/yaklabco/goslang/pkg/config"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // FILE, LOC, MESSAGE, CHECK, GAP
	minFileWidth     = 20
	minLocWidth      = 8
	minMessageWidth  = 35
	minCheckWidth    = 8
	gapWidth         = 5
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the issue table.
type TableRow struct {
	File     string
	Location string
	Message  string
	Check    string
	Severity config.Severity
	Gap      string
}

// IssueToTableRow converts a report issue to a table row.
func IssueToTableRow(issue *analysis.IssueEntry, ruleFormat config.RuleFormat) TableRow {
	row := TableRow{
		File:     issue.FilePath,
		Location: "file",
		Message:  issue.Message,
		Check:    ruleFormat.Label(issue.CheckID, issue.CheckName),
		Severity: config.Severity(issue.Severity),
	}
	if !issue.IsFile() {
		row.Location = fmt.Sprintf("%d:%d", issue.StartLine, issue.StartColumn)
	}
	if issue.Gap != nil {
		row.Gap = strconv.FormatFloat(*issue.Gap, 'g', -1, 64)
	}
	return row
}

// TableFormatter formats issues as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	file    int
	loc     int
	message int
	check   int
}

// FormatTable formats the issues of a report as a styled table, one
// group of rows per file.
func (t *TableFormatter) FormatTable(report *analysis.Report, ruleFormat config.RuleFormat) string {
	groups := collectRows(report, ruleFormat)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths) + "\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")
	builder.WriteString(t.formatLegend() + "\n")

	return builder.String()
}

// collectRows groups rows by file, keeping the report order.
func collectRows(report *analysis.Report, ruleFormat config.RuleFormat) [][]TableRow {
	if report == nil {
		return nil
	}

	var groups [][]TableRow
	for i := range report.Issues {
		row := IssueToTableRow(&report.Issues[i], ruleFormat)
		if n := len(groups); n > 0 && groups[n-1][0].File == row.File {
			groups[n-1] = append(groups[n-1], row)
			continue
		}
		groups = append(groups, []TableRow{row})
	}
	return groups
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		message: minMessageWidth,
		check:   minCheckWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, len(row.File))
			widths.loc = max(widths.loc, len(row.Location))
			widths.message = max(widths.message, len(row.Message))
			widths.check = max(widths.check, len(row.Check))
		}
	}

	// Shrink the message first, then the file path.
	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.message = max(minMessageWidth, widths.message-excess)
	}
	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) totalWidth(widths columnWidths) int {
	return widths.file + widths.loc + widths.message + widths.check + gapWidth +
		tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %*s ",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.message, "MESSAGE",
		widths.check, "CHECK",
		gapWidth, "GAP",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(widths)))
}

// formatRow formats a single table row with severity-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  ",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.loc, truncateString(row.Location, widths.loc),
		widths.message, truncateString(row.Message, widths.message),
		widths.check, truncateString(row.Check, widths.check),
	)
	gap := t.styles.TableGap.Render(fmt.Sprintf("%*s", gapWidth, truncateString(row.Gap, gapWidth)))
	return t.rowStyle(row.Severity).Render(content) + gap
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: GAP = estimated remediation effort")
	}

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = error  %s = warning  %s = info  GAP = estimated remediation effort",
			t.styles.TableErrorRow.Render(" error "),
			t.styles.TableWarnRow.Render(" warning "),
			t.styles.TableInfoRow.Render(" info "),
		),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals) string {
	parts := []string{fmt.Sprintf("%d files analyzed", totals.FilesAnalyzed)}

	if totals.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if totals.Infos > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	if totals.Failures > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d failures", totals.Failures)))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
