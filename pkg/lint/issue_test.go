package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

func TestIssueBuilder(t *testing.T) {
	t.Parallel()

	primary := tree.Range(3, 4, 3, 10)
	original := tree.Range(1, 0, 1, 6)

	issue := lint.NewIssue("SL105", primary, "duplicate").
		WithPath("a.go").
		WithCheckName("duplicated-function").
		WithSeverity(config.SeverityError).
		WithSecondary(lint.NewSecondaryLocation(original, "original implementation")).
		WithGap(2).
		Build()

	assert.Equal(t, "SL105", issue.CheckID)
	assert.Equal(t, "duplicated-function", issue.CheckName)
	assert.Equal(t, "a.go", issue.Path)
	assert.Equal(t, config.SeverityError, issue.Severity)
	require.NotNil(t, issue.Range)
	assert.Equal(t, primary, *issue.Range)
	assert.Equal(t, 3, issue.Line())
	assert.Equal(t, 5, issue.Column())
	require.Len(t, issue.Secondary, 1)
	assert.Equal(t, original, issue.Secondary[0].Range)
	assert.Equal(t, "original implementation", issue.Secondary[0].Message)
	require.NotNil(t, issue.Gap)
	assert.InDelta(t, 2.0, *issue.Gap, 0)
}

func TestIssueBuilder_FileLevel(t *testing.T) {
	t.Parallel()

	var missing *tree.IdentifierTree

	for _, at := range []tree.HasTextRange{nil, missing} {
		issue := lint.NewIssue("SL122", at, "tabs").Build()
		assert.Nil(t, issue.Range)
		assert.Equal(t, 0, issue.Line())
		assert.Equal(t, 0, issue.Column())
		assert.Nil(t, issue.Gap)
	}
}

func TestFailure_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	pointer := tree.NewTextPointer(4, 1)

	tests := []struct {
		name    string
		failure lint.Failure
		want    string
	}{
		{name: "file", failure: lint.Failure{Path: "a.js", Message: "oops", Err: cause}, want: "a.js: oops"},
		{name: "positioned", failure: lint.Failure{Path: "a.js", Message: "oops", Pointer: &pointer, Err: cause}, want: "a.js:4:2: oops"},
		{name: "check", failure: lint.Failure{Path: "a.js", CheckID: "SL101", Message: "oops", Err: cause}, want: "a.js: check SL101: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.failure.Error())
			assert.ErrorIs(t, &tt.failure, cause)
		})
	}
}
