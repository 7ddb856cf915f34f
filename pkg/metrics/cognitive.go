// Package metrics computes size and complexity measures over converted
// trees: cognitive complexity with its increments, the cyclomatic
// decision points and per-file totals.
package metrics

import (
	"fmt"

	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// Increment is one contribution to a cognitive complexity score: the
// location that caused it and the nesting level it was found at.
type Increment struct {
	Range        tree.TextRange
	NestingLevel int
}

// Value returns the points the increment adds.
func (i Increment) Value() int {
	return 1 + i.NestingLevel
}

// Message describes the increment for secondary locations.
func (i Increment) Message() string {
	if i.NestingLevel == 0 {
		return "+1"
	}
	return fmt.Sprintf("+%d (incl %d for nesting)", i.Value(), i.NestingLevel)
}

// CognitiveComplexity is the cognitive complexity of a tree.
type CognitiveComplexity struct {
	increments []Increment
}

// NewCognitiveComplexity computes the cognitive complexity of root. Nested
// functions count toward the score of root one nesting level deeper;
// class declarations reset the nesting.
func NewCognitiveComplexity(root tree.Tree) *CognitiveComplexity {
	c := &CognitiveComplexity{}
	considered := make(map[*tree.BinaryExpressionTree]bool)

	v := visit.NewVisitor()
	visit.On(v, func(ctx *visit.Context, t *tree.LoopTree) {
		c.withNesting(keywordRange(t.Keyword, t), ctx.Ancestors())
	})
	visit.On(v, func(ctx *visit.Context, t *tree.MatchTree) {
		c.withNesting(keywordRange(t.Keyword, t), ctx.Ancestors())
	})
	visit.On(v, func(ctx *visit.Context, t *tree.CatchTree) {
		c.withNesting(keywordRange(t.Keyword, t), ctx.Ancestors())
	})
	visit.On(v, func(_ *visit.Context, t *tree.JumpTree) {
		if t.Label != nil {
			c.withoutNesting(keywordRange(t.Keyword, t))
		}
	})
	visit.On(v, func(ctx *visit.Context, t *tree.IfTree) {
		c.ifTree(ctx.Ancestors(), t)
	})
	visit.On(v, func(_ *visit.Context, t *tree.BinaryExpressionTree) {
		c.binaryExpression(t, considered)
	})

	v.Scan(visit.NewContext(), root)
	return c
}

// Value returns the complexity score.
func (c *CognitiveComplexity) Value() int {
	total := 0
	for _, increment := range c.increments {
		total += increment.Value()
	}
	return total
}

// Increments returns the contributions in traversal order.
func (c *CognitiveComplexity) Increments() []Increment {
	return c.increments
}

func (c *CognitiveComplexity) ifTree(ancestors []tree.Tree, t *tree.IfTree) {
	var parent tree.Tree
	if len(ancestors) > 0 {
		parent = ancestors[0]
	}
	ternary := tree.IsTernaryOperator(ancestors, t)
	if !tree.IsElseIf(parent, t) || ternary {
		c.withNesting(keywordRange(t.IfKeyword, t), ancestors)
	}
	if t.ElseKeyword != nil && !ternary {
		c.withoutNesting(t.ElseKeyword.Range)
	}
}

// binaryExpression counts each run of identical logical operators of a
// flattened boolean expression once.
func (c *CognitiveComplexity) binaryExpression(t *tree.BinaryExpressionTree, considered map[*tree.BinaryExpressionTree]bool) {
	if !t.Operator.IsLogical() || considered[t] {
		return
	}

	var previous *tree.BinaryExpressionTree
	for _, operation := range flattenLogical(t, nil) {
		if previous == nil || previous.Operator != operation.Operator {
			c.withoutNesting(operatorRange(operation))
		}
		previous = operation
		considered[operation] = true
	}
}

func flattenLogical(t *tree.BinaryExpressionTree, operations []*tree.BinaryExpressionTree) []*tree.BinaryExpressionTree {
	if left, ok := tree.SkipParentheses(t.LeftOperand).(*tree.BinaryExpressionTree); ok && left.Operator.IsLogical() {
		operations = flattenLogical(left, operations)
	}
	operations = append(operations, t)
	if right, ok := tree.SkipParentheses(t.RightOperand).(*tree.BinaryExpressionTree); ok && right.Operator.IsLogical() {
		operations = flattenLogical(right, operations)
	}
	return operations
}

func (c *CognitiveComplexity) withNesting(at tree.TextRange, ancestors []tree.Tree) {
	c.increments = append(c.increments, Increment{Range: at, NestingLevel: NestingLevel(ancestors)})
}

func (c *CognitiveComplexity) withoutNesting(at tree.TextRange) {
	c.increments = append(c.increments, Increment{Range: at})
}

// NestingLevel returns the cognitive nesting of a node given its
// ancestors, innermost first. Loops, matches, catches and ifs that do not
// continue an else-if chain add a level, a function nested in another
// function or in control flow adds a level and a class declaration starts
// again from zero.
func NestingLevel(ancestors []tree.Tree) int {
	level := 0
	insideFunction := false
	var parent tree.Tree
	for i := len(ancestors) - 1; i >= 0; i-- {
		switch t := ancestors[i].(type) {
		case *tree.FunctionDeclarationTree:
			if insideFunction || level > 0 {
				level++
			}
			insideFunction = true
		case *tree.ClassDeclarationTree:
			level = 0
			insideFunction = false
		case *tree.IfTree:
			if !tree.IsElseIf(parent, t) {
				level++
			}
		case *tree.LoopTree, *tree.MatchTree, *tree.CatchTree:
			level++
		}
		parent = ancestors[i]
	}
	return level
}

func keywordRange(keyword *tree.Token, fallback tree.Tree) tree.TextRange {
	if keyword != nil {
		return keyword.Range
	}
	if first := fallback.MetaData().Provider().FirstToken(fallback.TextRange()); first != nil {
		return first.Range
	}
	return fallback.TextRange()
}

func operatorRange(t *tree.BinaryExpressionTree) tree.TextRange {
	if t.OperatorToken != nil {
		return t.OperatorToken.Range
	}
	return t.TextRange()
}
