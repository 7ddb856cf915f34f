package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, singular, many string) string {
	if n == 1 {
		return singular
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 1 failure".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.IssuesTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s analyzed)", stats.FilesAnalyzed, plural(stats.FilesAnalyzed, wordFile, wordFiles))))
	} else {
		var severityParts []string
		if errors := stats.IssuesBySeverity[string(config.SeverityError)]; errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", errors, plural(errors, "error", "errors"))))
		}
		if warnings := stats.IssuesBySeverity[string(config.SeverityWarning)]; warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings"))))
		}
		if infos := stats.IssuesBySeverity[string(config.SeverityInfo)]; infos > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
		}

		issues := fmt.Sprintf("%d %s", stats.IssuesTotal, plural(stats.IssuesTotal, "issue", "issues"))
		if len(severityParts) > 0 {
			issues += " (" + strings.Join(severityParts, ", ") + ")"
		}
		parts = append(parts, issues+fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles)))
	}

	if stats.Failures > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s", stats.Failures, plural(stats.Failures, "failure", "failures"))))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable %s", stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files analyzed:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesAnalyzed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.IssuesTotal)) + "\n")

	if errors := stats.IssuesBySeverity[string(config.SeverityError)]; errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.IssuesBySeverity[string(config.SeverityWarning)]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.IssuesBySeverity[string(config.SeverityInfo)]; infos > 0 {
		builder.WriteString("    Info:            " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}
	if stats.Failures > 0 {
		builder.WriteString("  Failures:          " +
			s.Failure.Render(strconv.Itoa(stats.Failures)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.IssuesBySeverity[string(config.SeverityError)] > 0 || stats.Failures > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Analysis failed with errors"))
	case stats.IssuesBySeverity[string(config.SeverityWarning)] > 0:
		builder.WriteString(s.Warning.Render("Analysis completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Analysis passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
