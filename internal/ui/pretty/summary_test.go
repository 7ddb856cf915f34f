package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goslang/internal/ui/pretty"
	"github.com/yaklabco/goslang/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "no issues",
			stats: runner.Stats{FilesAnalyzed: 1},
			want:  "No issues found (1 file analyzed)\n",
		},
		{
			name: "issues by severity",
			stats: runner.Stats{
				FilesAnalyzed:    4,
				FilesWithIssues:  2,
				IssuesTotal:      4,
				IssuesBySeverity: map[string]int{"error": 1, "warning": 2, "info": 1},
			},
			want: "4 issues (1 error, 2 warnings, 1 info) in 2 files\n",
		},
		{
			name: "failures and unreadable files",
			stats: runner.Stats{
				FilesWithIssues:  1,
				IssuesTotal:      1,
				IssuesBySeverity: map[string]int{"error": 1},
				Failures:         1,
				FilesErrored:     2,
			},
			want: "1 issue (1 error) in 1 file, 1 failure, 2 unreadable files\n",
		},
	}

	styles := pretty.NewStyles(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stats       runner.Stats
		contains    []string
		notContains []string
	}{
		{
			name: "errors",
			stats: runner.Stats{
				FilesAnalyzed:    10,
				FilesWithIssues:  3,
				IssuesTotal:      15,
				IssuesBySeverity: map[string]int{"error": 5, "warning": 10},
			},
			contains: []string{"Summary", "Files analyzed:    10", "Files with issues: 3", "Total issues:      15", "Errors:          5", "Analysis failed with errors"},
		},
		{
			name: "warnings",
			stats: runner.Stats{
				FilesAnalyzed:    2,
				FilesSkipped:     1,
				IssuesTotal:      1,
				IssuesBySeverity: map[string]int{"warning": 1},
			},
			contains:    []string{"Files skipped:     1", "Analysis completed with warnings"},
			notContains: []string{"Errors:"},
		},
		{
			name:        "clean",
			stats:       runner.Stats{FilesAnalyzed: 5, IssuesBySeverity: map[string]int{}},
			contains:    []string{"Analysis passed"},
			notContains: []string{"Files with issues:", "Failures:"},
		},
		{
			name:     "failures",
			stats:    runner.Stats{FilesAnalyzed: 1, Failures: 2},
			contains: []string{"Failures:          2", "Analysis failed with errors"},
		},
	}

	styles := pretty.NewStyles(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatSummary(tt.stats)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}
