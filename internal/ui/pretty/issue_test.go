package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goslang/internal/ui/pretty"
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

func TestFormatIssue(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	primary := tree.Range(3, 5, 3, 11)
	gap := 2.0
	issue := &lint.Issue{
		CheckID:   "SL101",
		CheckName: "cognitive-complexity",
		Severity:  config.SeverityError,
		Range:     &primary,
		Message:   "Refactor this function",
		Secondary: []lint.SecondaryLocation{
			{Range: tree.Range(4, 1, 4, 3), Message: "+1"},
			{Range: tree.Range(5, 2, 5, 4)},
		},
		Gap: &gap,
	}

	tests := []struct {
		name       string
		sourceLine string
		format     config.RuleFormat
		want       string
	}{
		{
			name:   "without context",
			format: config.RuleFormatID,
			want: "  a.go:3:6  error  Refactor this function  (SL101)\n" +
				"        ↳ 4:2  +1\n" +
				"        ↳ 5:3\n" +
				"        gap: 2\n",
		},
		{
			name:       "with context",
			sourceLine: "func\tnested() {",
			format:     config.RuleFormatName,
			want: "  a.go:3:6  error  Refactor this function  (cognitive-complexity)\n" +
				"        func nested() {\n" +
				"             ^\n" +
				"        ↳ 4:2  +1\n" +
				"        ↳ 5:3\n" +
				"        gap: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styles.FormatIssue("a.go", issue, tt.sourceLine, tt.format))
		})
	}
}

func TestFormatIssue_FileLevel(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	issue := &lint.Issue{CheckID: "SL122", CheckName: "tab-character", Message: "Replace tabs"}

	got := styles.FormatIssue("a.go", issue, "ignored", config.RuleFormatCombined)

	assert.Equal(t, "  a.go  warning  Replace tabs  (SL122/tab-character)\n", got)
}

func TestFormatFailure(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	pointer := tree.NewTextPointer(3, 7)

	assert.Equal(t, "  a.go:3:8  failure  syntax error\n",
		styles.FormatFailure("a.go", &lint.Failure{Message: "syntax error", Pointer: &pointer}))
	assert.Equal(t, "  a.go  failure  boom  (SL101)\n",
		styles.FormatFailure("a.go", &lint.Failure{CheckID: "SL101", Message: "boom"}))
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(""))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "a.go", styles.FormatFileHeader("a.go", 0))
	assert.Equal(t, "a.go (1 issue)", styles.FormatFileHeader("a.go", 1))
	assert.Equal(t, "a.go (3 issues)", styles.FormatFileHeader("a.go", 3))
}
