package checks

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goslang/pkg/equivalence"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

// BooleanLiteralCheck reports boolean literals that can be simplified
// away.
type BooleanLiteralCheck struct {
	lint.BaseCheck
}

// NewBooleanLiteralCheck creates a new boolean-literal check.
func NewBooleanLiteralCheck() *BooleanLiteralCheck {
	return &BooleanLiteralCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL114",
			"boolean-literal",
			"Boolean literals should not be redundant",
			"style",
		),
	}
}

const redundantBooleanMessage = "Remove the unnecessary Boolean literal."

// Initialize registers the callbacks.
func (c *BooleanLiteralCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		// Only a single if/else or conditional expression yielding values.
		if !isChainHead(ctx.Ancestors(), t) {
			return
		}
		if _, elseIf := t.ElseBranch.(*tree.IfTree); elseIf {
			return
		}
		_, thenBlock := t.ThenBranch.(*tree.BlockTree)
		_, elseBlock := t.ElseBranch.(*tree.BlockTree)
		if thenBlock || elseBlock {
			return
		}
		if literal := firstBooleanLiteral(t.ThenBranch, t.ElseBranch); literal != nil {
			ctx.ReportIssue(literal, redundantBooleanMessage)
		}
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.BinaryExpressionTree) {
		switch t.Operator {
		case tree.OperatorConditionalAnd, tree.OperatorConditionalOr, tree.OperatorEqualTo, tree.OperatorNotEqualTo:
		default:
			return
		}
		if literal := firstBooleanLiteral(t.LeftOperand, t.RightOperand); literal != nil {
			ctx.ReportIssue(literal, redundantBooleanMessage)
		}
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.UnaryExpressionTree) {
		if t.Operator != tree.UnaryNegate {
			return
		}
		if literal := firstBooleanLiteral(t.Operand); literal != nil {
			ctx.ReportIssue(literal, redundantBooleanMessage)
		}
	})
	return nil
}

func firstBooleanLiteral(trees ...tree.Tree) *tree.LiteralTree {
	for _, t := range trees {
		if tree.IsNil(t) {
			continue
		}
		if literal, ok := tree.SkipParentheses(t).(*tree.LiteralTree); ok && literal.IsBoolean() {
			return literal
		}
	}
	return nil
}

// SelfAssignmentCheck reports plain assignments of a value to itself.
type SelfAssignmentCheck struct {
	lint.BaseCheck
}

// NewSelfAssignmentCheck creates a new self-assignment check.
func NewSelfAssignmentCheck() *SelfAssignmentCheck {
	return &SelfAssignmentCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL115",
			"self-assignment",
			"Variables should not be self-assigned",
			"style", "bug",
		),
	}
}

// Initialize registers the callbacks.
func (c *SelfAssignmentCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.AssignmentExpressionTree) {
		if t.Operator == tree.AssignEqual && equivalence.AreEquivalent(t.LeftHandSide, t.Statement) {
			ctx.ReportIssue(t, "Remove or correct this useless self-assignment.")
		}
	})
	return nil
}

// TooLongLineCheck reports lines longer than allowed.
type TooLongLineCheck struct {
	lint.BaseCheck
}

// NewTooLongLineCheck creates a new too-long-line check.
func NewTooLongLineCheck() *TooLongLineCheck {
	return &TooLongLineCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL121",
			"too-long-line",
			"Lines should not be too long",
			"style",
		),
	}
}

// Initialize reads the maximum and registers the callbacks.
//
// Options:
//   - max: longest line allowed, in characters (default 120)
func (c *TooLongLineCheck) Initialize(initCtx *lint.InitContext) error {
	maxLength := initCtx.OptionInt("max", 120)

	lint.Register(initCtx, func(ctx *lint.CheckContext, _ *tree.TopLevelTree) {
		file := ctx.File()
		for i := range file.Lines() {
			line := i + 1
			length := lint.LineLength(file, line)
			if length <= maxLength {
				continue
			}
			message := fmt.Sprintf("Split this %d characters long line (which is greater than %d authorized).", length, maxLength)
			ctx.ReportIssue(tree.Range(line, 0, line, length), message)
		}
	})
	return nil
}

// TabsCheck reports files indented with tab characters. It is disabled by
// default since tabs are the norm in Go.
type TabsCheck struct {
	lint.BaseCheck
}

// NewTabsCheck creates a new tabs check.
func NewTabsCheck() *TabsCheck {
	return &TabsCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL122",
			"tabs",
			"Tabulation characters should not be used",
			"style",
		),
	}
}

// DefaultEnabled returns false.
func (c *TabsCheck) DefaultEnabled() bool {
	return false
}

// Initialize registers the callbacks.
func (c *TabsCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, _ *tree.TopLevelTree) {
		if strings.Contains(ctx.FileContent(), "\t") {
			ctx.ReportFileIssue("Replace all tab characters in this file by sequences of white-spaces.")
		}
	})
	return nil
}

// RedundantParenthesesCheck reports parentheses doubled around an
// expression.
type RedundantParenthesesCheck struct {
	lint.BaseCheck
}

// NewRedundantParenthesesCheck creates a new redundant-parentheses check.
func NewRedundantParenthesesCheck() *RedundantParenthesesCheck {
	return &RedundantParenthesesCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL123",
			"redundant-parentheses",
			"Redundant pairs of parentheses should be removed",
			"style",
		),
	}
}

// Initialize registers the callbacks.
func (c *RedundantParenthesesCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.ParenthesizedExpressionTree) {
		inner, ok := t.Expression.(*tree.ParenthesizedExpressionTree)
		if !ok {
			return
		}
		if inner.LeftParenthesis == nil || inner.RightParenthesis == nil {
			ctx.ReportIssue(inner, "Remove these useless parentheses.")
			return
		}
		ctx.ReportIssue(inner.LeftParenthesis, "Remove these useless parentheses.",
			lint.NewSecondaryLocation(inner.RightParenthesis, ""))
	})
	return nil
}
