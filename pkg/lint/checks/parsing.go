package checks

import (
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

// ParsingErrorCheck turns a parse failure into a visible issue. The failure
// itself is always reported to the host as an analysis error.
type ParsingErrorCheck struct {
	lint.BaseCheck
}

// NewParsingErrorCheck creates a new parsing-error check.
func NewParsingErrorCheck() *ParsingErrorCheck {
	return &ParsingErrorCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL100",
			"parsing-error",
			"Files should be parsable",
			"parsing",
		),
	}
}

// DefaultSeverity returns error: nothing else is checked in such a file.
func (c *ParsingErrorCheck) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Initialize registers the parse failure callback.
func (c *ParsingErrorCheck) Initialize(initCtx *lint.InitContext) error {
	initCtx.OnParseError(func(ctx *lint.CheckContext, err *tree.ParseError) {
		const message = "A parsing error occurred in this file."
		if err.Pointer == nil {
			ctx.ReportFileIssue(message)
			return
		}
		ctx.ReportIssue(tree.NewTextRange(*err.Pointer, *err.Pointer), message)
	})
	return nil
}
