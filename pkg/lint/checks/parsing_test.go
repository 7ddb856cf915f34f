package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/langdetect"
)

func TestParsingErrorCheck(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		result := analyze(t, NewParsingErrorCheck(), langdetect.Go, "package p\n\nfunc f( {\n", nil)
		assert.Nil(t, result.File)
		require.Len(t, result.Failures, 1)
		require.Len(t, result.Issues, 1)

		issue := result.Issues[0]
		assert.Equal(t, "SL100", issue.CheckID)
		assert.Equal(t, config.SeverityError, issue.Severity)
		assert.Equal(t, "A parsing error occurred in this file.", issue.Message)
		require.NotNil(t, issue.Range)
		assert.Equal(t, issue.Range.Start, issue.Range.End)
		require.NotNil(t, result.Failures[0].Pointer)
		assert.Equal(t, *result.Failures[0].Pointer, issue.Range.Start)
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		result := analyze(t, NewParsingErrorCheck(), langdetect.JavaScript, "let x = 1;\n", nil)
		assert.Empty(t, result.Failures)
		assert.Empty(t, result.Issues)
	})
}
