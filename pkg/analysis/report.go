package analysis

import (
	"time"

	"github.com/yaklabco/goslang/pkg/metrics"
)

// Report contains pre-computed views of analysis results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Issues is the flat list for detailed output.
	Issues []IssueEntry `json:"issues,omitempty"`

	// Failures lists the analysis errors, per file.
	Failures []FailureEntry `json:"failures,omitempty"`

	// FileErrors lists the files that could not be read.
	FileErrors []FileErrorEntry `json:"fileErrors,omitempty"`

	// ByFile groups issues by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByCheck groups issues by check.
	ByCheck []CheckAnalysis `json:"byCheck,omitempty"`

	// Metrics is the sum of the metrics of every analyzed file.
	Metrics metrics.FileMetrics `json:"metrics"`

	// Duplications lists the copy-paste blocks, when detection ran.
	Duplications []DuplicationEntry `json:"duplications,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Location is a 1-based line and column span. Zero values mark a
// file-level location.
type Location struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// IsFile reports whether the location designates the whole file.
func (l Location) IsFile() bool {
	return l.StartLine == 0
}

// IssueEntry represents a single issue in the report.
type IssueEntry struct {
	Location

	FilePath  string           `json:"filePath"`
	CheckID   string           `json:"checkId"`
	CheckName string           `json:"checkName"`
	Severity  string           `json:"severity"`
	Message   string           `json:"message"`
	Secondary []SecondaryEntry `json:"secondary,omitempty"`
	Gap       *float64         `json:"gap,omitempty"`
}

// SecondaryEntry is an auxiliary location of an issue.
type SecondaryEntry struct {
	Location

	Message string `json:"message,omitempty"`
}

// FailureEntry represents an analysis failure.
type FailureEntry struct {
	FilePath string `json:"filePath"`
	CheckID  string `json:"checkId,omitempty"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// FileErrorEntry is a file that could not be analyzed at all.
type FileErrorEntry struct {
	FilePath string `json:"filePath"`
	Error    string `json:"error"`
}

// DuplicationEntry is a duplicated token sequence and where it occurs.
type DuplicationEntry struct {
	Tokens int          `json:"tokens"`
	Blocks []BlockEntry `json:"blocks"`
}

// BlockEntry is one occurrence of a duplication.
type BlockEntry struct {
	FilePath  string `json:"filePath"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesAnalyzed   int `json:"filesAnalyzed"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesWithIssues int `json:"filesWithIssues"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
	Failures        int `json:"failures"`
	FileErrors      int `json:"fileErrors"`
	Duplications    int `json:"duplications"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any error-severity issues, analysis
// failures or unreadable files.
func (t Totals) HasErrors() bool {
	return t.Errors > 0 || t.Failures > 0 || t.FileErrors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string              `json:"path"`
	Language string              `json:"language"`
	Issues   int                 `json:"issues"`
	Errors   int                 `json:"errors"`
	Warnings int                 `json:"warnings"`
	Infos    int                 `json:"infos"`
	Failures int                 `json:"failures"`
	Checks   []string            `json:"checks,omitempty"`
	Metrics  metrics.FileMetrics `json:"metrics"`
}

// CheckAnalysis contains aggregated data for a single check.
type CheckAnalysis struct {
	CheckID   string   `json:"checkId"`
	CheckName string   `json:"checkName"`
	Issues    int      `json:"issues"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
	Infos     int      `json:"infos"`
	Files     []string `json:"files,omitempty"`
}
