package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/langdetect"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/parser/treesitter"
)

// analyze runs check alone, enabled whatever its default, over source.
func analyze(t *testing.T, check lint.Check, language, source string, options map[string]any) *lint.FileResult {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(check)

	cfg := config.NewConfig()
	cfg.EnableRules = []string{check.ID()}
	if options != nil {
		cfg.Rules[check.ID()] = config.RuleConfig{Options: options}
	}

	engine, err := lint.NewEngine(registry, cfg, treesitter.NewGo(), treesitter.NewJavaScript())
	require.NoError(t, err)
	t.Cleanup(engine.Close)

	path := "sample.go"
	if language == langdetect.JavaScript {
		path = "sample.js"
	}
	result, err := engine.AnalyzeFile(context.Background(), path, []byte(source), language)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

// issues runs check over source and returns its issues, requiring the
// analysis to have completed.
func issues(t *testing.T, check lint.Check, language, source string, options map[string]any) []lint.Issue {
	t.Helper()
	result := analyze(t, check, language, source, options)
	require.Empty(t, result.Failures)
	return result.Issues
}

func lines(found []lint.Issue) []int {
	out := make([]int, 0, len(found))
	for _, issue := range found {
		out = append(out, issue.Line())
	}
	return out
}

func secondaryLines(issue lint.Issue) []int {
	out := make([]int, 0, len(issue.Secondary))
	for _, secondary := range issue.Secondary {
		out = append(out, secondary.Range.Start.Line)
	}
	return out
}
