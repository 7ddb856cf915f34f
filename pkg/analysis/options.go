package analysis

import "github.com/yaklabco/goslang/pkg/config"

// SortField orders the per-file and per-check breakdowns.
type SortField string

const (
	SortByCount    SortField = "count"    // issue count
	SortByAlpha    SortField = "alpha"    // path or check ID
	SortBySeverity SortField = "severity" // error count, then warnings
)

// Options selects the parts of a Report that Analyze fills in.
type Options struct {
	IncludeIssues  bool // flat, sorted issue list
	IncludeByFile  bool
	IncludeByCheck bool

	SortBy   SortField
	SortDesc bool

	// RuleFormat renders the check labels of the per-check breakdown.
	RuleFormat config.RuleFormat

	// WorkingDir makes file paths relative when set.
	WorkingDir string
}

// DefaultOptions includes every section, largest counts first.
func DefaultOptions() Options {
	return Options{
		IncludeIssues:  true,
		IncludeByFile:  true,
		IncludeByCheck: true,
		SortBy:         SortByCount,
		SortDesc:       true,
		RuleFormat:     config.RuleFormatName,
	}
}
