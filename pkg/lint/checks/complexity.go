package checks

import (
	"fmt"

	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/metrics"
	"github.com/yaklabco/goslang/pkg/tree"
)

// CognitiveComplexityCheck reports functions whose cognitive complexity
// exceeds a threshold.
type CognitiveComplexityCheck struct {
	lint.BaseCheck
}

// NewCognitiveComplexityCheck creates a new cognitive-complexity check.
func NewCognitiveComplexityCheck() *CognitiveComplexityCheck {
	return &CognitiveComplexityCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL101",
			"cognitive-complexity",
			"Cognitive Complexity of functions should not be too high",
			"complexity",
		),
	}
}

// Initialize reads the threshold and registers the callbacks.
//
// Options:
//   - threshold: highest complexity allowed (default 15)
func (c *CognitiveComplexityCheck) Initialize(initCtx *lint.InitContext) error {
	threshold := initCtx.OptionInt("threshold", 15)

	lint.Register(initCtx, func(ctx *lint.CheckContext, fn *tree.FunctionDeclarationTree) {
		// Nested functions count toward the enclosing one.
		if lint.IsNestedFunction(ctx.Ancestors()) {
			return
		}
		complexity := metrics.NewCognitiveComplexity(fn)
		value := complexity.Value()
		if value <= threshold {
			return
		}

		increments := complexity.Increments()
		secondaries := make([]lint.SecondaryLocation, 0, len(increments))
		for _, increment := range increments {
			secondaries = append(secondaries, lint.SecondaryLocation{Range: increment.Range, Message: increment.Message()})
		}
		message := fmt.Sprintf("Refactor this function to reduce its Cognitive Complexity from %d to the %d allowed.", value, threshold)
		ctx.ReportIssueWithGap(fn.RangeToHighlight(), message, float64(value-threshold), secondaries...)
	})
	return nil
}

// NestedControlFlowCheck reports control flow statements nested deeper
// than allowed. Else-if continuations and conditional expressions do not
// add a level; each function starts again from zero.
type NestedControlFlowCheck struct {
	lint.BaseCheck
}

// NewNestedControlFlowCheck creates a new nested-control-flow check.
func NewNestedControlFlowCheck() *NestedControlFlowCheck {
	return &NestedControlFlowCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL102",
			"nested-control-flow",
			"Control flow statements should not be nested too deeply",
			"complexity",
		),
	}
}

// Initialize reads the maximum depth and registers the callbacks.
//
// Options:
//   - max: deepest nesting allowed (default 3)
func (c *NestedControlFlowCheck) Initialize(initCtx *lint.InitContext) error {
	maxDepth := initCtx.OptionInt("max", 3)

	check := func(ctx *lint.CheckContext, keyword tree.TextRange) {
		enclosing := nestingKeywords(ctx.Ancestors())
		if len(enclosing) != maxDepth {
			return
		}
		secondaries := make([]lint.SecondaryLocation, 0, len(enclosing))
		for i := len(enclosing) - 1; i >= 0; i-- {
			secondaries = append(secondaries, lint.SecondaryLocation{Range: enclosing[i], Message: "Nesting +1"})
		}
		message := fmt.Sprintf("Refactor this code to not nest more than %d control flow statements.", maxDepth)
		ctx.ReportIssue(keyword, message, secondaries...)
	}

	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		ancestors := ctx.Ancestors()
		if isChainHead(ancestors, t) && !tree.IsTernaryOperator(ancestors, t) {
			check(ctx, keywordOf(t.IfKeyword, t))
		}
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.LoopTree) {
		check(ctx, keywordOf(t.Keyword, t))
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.MatchTree) {
		check(ctx, keywordOf(t.Keyword, t))
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.ExceptionHandlingTree) {
		check(ctx, keywordOf(t.TryKeyword, t))
	})
	return nil
}

// nestingKeywords returns the keywords of the control flow statements
// enclosing a node, innermost first, up to the enclosing function.
func nestingKeywords(ancestors []tree.Tree) []tree.TextRange {
	var keywords []tree.TextRange
	for i, ancestor := range ancestors {
		switch t := ancestor.(type) {
		case *tree.FunctionDeclarationTree:
			return keywords
		case *tree.IfTree:
			outer := ancestors[i+1:]
			if isChainHead(outer, t) && !tree.IsTernaryOperator(outer, t) {
				keywords = append(keywords, keywordOf(t.IfKeyword, t))
			}
		case *tree.LoopTree:
			keywords = append(keywords, keywordOf(t.Keyword, t))
		case *tree.MatchTree:
			keywords = append(keywords, keywordOf(t.Keyword, t))
		case *tree.ExceptionHandlingTree:
			keywords = append(keywords, keywordOf(t.TryKeyword, t))
		}
	}
	return keywords
}

// TooComplexExpressionCheck reports expressions using too many conditional
// operators.
type TooComplexExpressionCheck struct {
	lint.BaseCheck
}

// NewTooComplexExpressionCheck creates a new too-complex-expression check.
func NewTooComplexExpressionCheck() *TooComplexExpressionCheck {
	return &TooComplexExpressionCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL107",
			"too-complex-expression",
			"Expressions should not be too complex",
			"complexity",
		),
	}
}

// Initialize reads the maximum and registers the callbacks.
//
// Options:
//   - max: most conditional operators allowed in one expression (default 3)
func (c *TooComplexExpressionCheck) Initialize(initCtx *lint.InitContext) error {
	maxOperators := initCtx.OptionInt("max", 3)

	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.BinaryExpressionTree) {
		if !isOutermostExpression(ctx.Ancestors()) {
			return
		}
		complexity := expressionComplexity(t)
		if complexity <= maxOperators {
			return
		}
		message := fmt.Sprintf("Reduce the number of conditional operators (%d) used in the expression (maximum allowed %d).",
			complexity, maxOperators)
		ctx.ReportIssueWithGap(t, message, float64(complexity-maxOperators))
	})
	return nil
}

// isOutermostExpression decides on the first ancestor: a binary expression
// makes the node an operand, anything else makes it outermost.
//
// TODO(product): the walk is meant to look through parentheses and unary
// operators, so that the operands of (a && b) || !(c && d) are not scored
// on their own. It stops at the first ancestor instead and the current
// results are kept until the intended scoring is agreed on.
func isOutermostExpression(ancestors []tree.Tree) bool {
	for _, ancestor := range ancestors {
		if _, ok := ancestor.(*tree.BinaryExpressionTree); ok {
			return false
		}
		_, unary := ancestor.(*tree.UnaryExpressionTree)
		_, parenthesized := ancestor.(*tree.ParenthesizedExpressionTree)
		if !unary || !parenthesized {
			return true
		}
	}
	return true
}

// expressionComplexity counts the conditional operators of t, looking
// through parentheses and unary operators.
func expressionComplexity(t tree.Tree) int {
	switch expression := tree.SkipParentheses(t).(type) {
	case *tree.BinaryExpressionTree:
		complexity := 0
		if expression.Operator.IsLogical() {
			complexity = 1
		}
		return complexity + expressionComplexity(expression.LeftOperand) + expressionComplexity(expression.RightOperand)
	case *tree.UnaryExpressionTree:
		return expressionComplexity(expression.Operand)
	default:
		return 0
	}
}

// TooManyParametersCheck reports functions with too many parameters.
type TooManyParametersCheck struct {
	lint.BaseCheck
}

// NewTooManyParametersCheck creates a new too-many-parameters check.
func NewTooManyParametersCheck() *TooManyParametersCheck {
	return &TooManyParametersCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL111",
			"too-many-parameters",
			"Functions should not have too many parameters",
			"complexity",
		),
	}
}

// Initialize reads the maximum and registers the callbacks.
//
// Options:
//   - max: most parameters allowed (default 7)
func (c *TooManyParametersCheck) Initialize(initCtx *lint.InitContext) error {
	maxParameters := initCtx.OptionInt("max", 7)

	lint.Register(initCtx, func(ctx *lint.CheckContext, fn *tree.FunctionDeclarationTree) {
		count := len(fn.FormalParameters)
		if count <= maxParameters || fn.HasModifier(tree.ModifierOverride) {
			return
		}
		secondaries := make([]lint.SecondaryLocation, 0, count-maxParameters)
		for _, parameter := range fn.FormalParameters[maxParameters:] {
			secondaries = append(secondaries, lint.NewSecondaryLocation(parameter, ""))
		}
		message := fmt.Sprintf("This function has %d parameters, which is greater than the %d authorized.", count, maxParameters)
		ctx.ReportIssue(fn.RangeToHighlight(), message, secondaries...)
	})
	return nil
}

// TooLongFunctionCheck reports functions whose body has too many lines of
// code.
type TooLongFunctionCheck struct {
	lint.BaseCheck
}

// NewTooLongFunctionCheck creates a new too-long-function check.
func NewTooLongFunctionCheck() *TooLongFunctionCheck {
	return &TooLongFunctionCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL112",
			"too-long-function",
			"Functions should not have too many lines of code",
			"complexity",
		),
	}
}

// Initialize reads the maximum and registers the callbacks.
//
// Options:
//   - max: most lines of code allowed in a body (default 100)
func (c *TooLongFunctionCheck) Initialize(initCtx *lint.InitContext) error {
	maxLines := initCtx.OptionInt("max", 100)

	lint.Register(initCtx, func(ctx *lint.CheckContext, fn *tree.FunctionDeclarationTree) {
		if fn.Body == nil {
			return
		}
		lines := len(fn.Body.MetaData().LinesOfCode())
		if lines <= maxLines {
			return
		}
		message := fmt.Sprintf("This function has %d lines of code, which is greater than the %d authorized. Split it into smaller functions.",
			lines, maxLines)
		ctx.ReportIssue(fn.RangeToHighlight(), message)
	})
	return nil
}

// TooManyCasesCheck reports match statements with too many cases.
type TooManyCasesCheck struct {
	lint.BaseCheck
}

// NewTooManyCasesCheck creates a new too-many-cases check.
func NewTooManyCasesCheck() *TooManyCasesCheck {
	return &TooManyCasesCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL113",
			"too-many-cases",
			"Match statements should not have too many cases",
			"complexity",
		),
	}
}

// Initialize reads the maximum and registers the callbacks.
//
// Options:
//   - max: most cases allowed (default 30)
func (c *TooManyCasesCheck) Initialize(initCtx *lint.InitContext) error {
	maxCases := initCtx.OptionInt("max", 30)

	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.MatchTree) {
		if len(t.Cases) <= maxCases {
			return
		}
		secondaries := make([]lint.SecondaryLocation, 0, len(t.Cases))
		for _, matchCase := range t.Cases {
			secondaries = append(secondaries, lint.SecondaryLocation{Range: matchCase.RangeToHighlight()})
		}
		message := fmt.Sprintf("Reduce the number of %s clauses from %d to at most %d.",
			keywordText(t.Keyword, t), len(t.Cases), maxCases)
		ctx.ReportIssue(keywordOf(t.Keyword, t), message, secondaries...)
	})
	return nil
}
