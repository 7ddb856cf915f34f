package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goslang/pkg/config"
)

func TestTotals_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totals     Totals
		wantIssues bool
		wantErrors bool
	}{
		{name: "empty"},
		{name: "warnings only", totals: Totals{Issues: 5, Warnings: 5}, wantIssues: true},
		{name: "error issue", totals: Totals{Issues: 1, Errors: 1}, wantIssues: true, wantErrors: true},
		{name: "analysis failure", totals: Totals{Failures: 1}, wantErrors: true},
		{name: "unreadable file", totals: Totals{FileErrors: 1}, wantErrors: true},
		{name: "skipped files", totals: Totals{Files: 3, FilesSkipped: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantIssues, tt.totals.HasIssues())
			assert.Equal(t, tt.wantErrors, tt.totals.HasErrors())
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Options{
		IncludeIssues:  true,
		IncludeByFile:  true,
		IncludeByCheck: true,
		SortBy:         SortByCount,
		SortDesc:       true,
		RuleFormat:     config.RuleFormatName,
	}, DefaultOptions())
}

func TestLocation_IsFile(t *testing.T) {
	t.Parallel()

	assert.True(t, Location{}.IsFile())
	assert.False(t, Location{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 2}.IsFile())
}
