package runner

import (
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/cpd"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/metrics"
)

// FileOutcome is the analysis of one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the guest language the file was analyzed as. Empty when
	// the file was skipped before detection succeeded.
	Language string

	// Result contains the issues and failures of the file. Nil when the
	// file was skipped or could not be read.
	Result *lint.FileResult

	// Metrics holds the size and complexity measures of the file.
	Metrics metrics.FileMetrics

	// Skipped explains why the file was not analyzed; empty otherwise.
	Skipped string

	// Error is set if the file could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesAnalyzed is the number of files handed to the engine.
	FilesAnalyzed int

	// FilesSkipped is the number of files left out after reading, such as
	// generated code or files of a language not analyzed.
	FilesSkipped int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesFailed is the number of analyzed files with at least one
	// analysis failure (parse failure, malformed tree, failed check).
	FilesFailed int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[string]int

	// Failures is the total number of analysis failures.
	Failures int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Metrics is the sum of the metrics of every analyzed file.
	Metrics metrics.FileMetrics

	// Duplications holds the copy-paste blocks found across files, when
	// detection is enabled.
	Duplications []cpd.Duplication

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasErrors reports whether the run found error-severity issues, analysis
// failures or unreadable files.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesBySeverity[string(config.SeverityError)] > 0 ||
		r.Stats.Failures > 0 ||
		r.Stats.FilesErrored > 0
}

// HasWarnings reports whether any warning-severity issues occurred.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesBySeverity[string(config.SeverityWarning)] > 0
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped != "":
		r.Stats.FilesSkipped++
		return
	case outcome.Result == nil:
		return
	}

	r.Stats.FilesAnalyzed++
	r.Metrics.Add(outcome.Metrics)

	if outcome.Result.HasFailures() {
		r.Stats.FilesFailed++
		r.Stats.Failures += len(outcome.Result.Failures)
	}

	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	r.Stats.IssuesTotal += outcome.Result.IssueCount()
	for _, issue := range outcome.Result.Issues {
		severity := string(issue.Severity)
		if severity == "" {
			severity = string(config.SeverityWarning)
		}
		r.Stats.IssuesBySeverity[severity]++
	}
}
