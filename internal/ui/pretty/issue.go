package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
)

// sourceIndent aligns source context and secondary locations under the
// issue line.
const sourceIndent = "        "

// FormatIssue formats a single issue for terminal output: the location,
// severity, message and check, then the source context when sourceLine is
// not empty, the secondary locations, and the remediation gap.
func (s *Styles) FormatIssue(path string, issue *lint.Issue, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := s.FilePath.Render(path)
	if issue.Range != nil {
		location += fmt.Sprintf(":%d:%d", issue.Line(), issue.Column())
	}

	checkIdentifier := ruleFormat.Label(issue.CheckID, issue.CheckName)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(issue.Severity),
		s.Message.Render(issue.Message),
		s.CheckID.Render("("+checkIdentifier+")"),
	))

	if sourceLine != "" && issue.Range != nil {
		builder.WriteString(s.FormatSourceContext(sourceLine, issue.Column()))
	}

	for _, secondary := range issue.Secondary {
		builder.WriteString(s.FormatSecondary(secondary))
	}

	if issue.Gap != nil {
		builder.WriteString(sourceIndent + s.Gap.Render("gap: "+strconv.FormatFloat(*issue.Gap, 'g', -1, 64)) + "\n")
	}

	return builder.String()
}

// FormatSecondary formats a secondary location, indented under its issue.
func (s *Styles) FormatSecondary(secondary lint.SecondaryLocation) string {
	location := fmt.Sprintf("%d:%d", secondary.Range.Start.Line, secondary.Range.Start.LineOffset+1)
	line := sourceIndent + s.Secondary.Render("↳ "+location)
	if secondary.Message != "" {
		line += "  " + s.Dim.Render(secondary.Message)
	}
	return line + "\n"
}

// FormatFailure formats an analysis failure.
func (s *Styles) FormatFailure(path string, failure *lint.Failure) string {
	location := s.FilePath.Render(path)
	if failure.Pointer != nil {
		location += fmt.Sprintf(":%d:%d", failure.Pointer.Line, failure.Pointer.LineOffset+1)
	}
	line := fmt.Sprintf("  %s  %s  %s", location, s.Failure.Render("failure"), s.Message.Render(failure.Message))
	if failure.CheckID != "" {
		line += "  " + s.CheckID.Render("("+failure.CheckID+")")
	}
	return line + "\n"
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning, "":
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Tabs would shift the caret.
	line = strings.ReplaceAll(line, "\t", " ")
	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := sourceIndent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch issueCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 issue)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
