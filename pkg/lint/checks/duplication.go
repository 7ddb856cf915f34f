package checks

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/goslang/pkg/equivalence"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// conditional is an if chain or a match statement seen as a list of
// branches.
type conditional struct {
	keyword  tree.TextRange
	branches []tree.Tree
	// complete is set when one of the branches always runs: the chain ends
	// with else or the match has a default case.
	complete bool
	ternary  bool
}

// registerConditionals calls fn for each if chain, once from its head, and
// for each match statement.
func registerConditionals(initCtx *lint.InitContext, fn func(ctx *lint.CheckContext, c conditional)) {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		ancestors := ctx.Ancestors()
		if !isChainHead(ancestors, t) {
			return
		}
		branches, complete := lint.IfChainBranches(t)
		fn(ctx, conditional{
			keyword:  keywordOf(t.IfKeyword, t),
			branches: branches,
			complete: complete,
			ternary:  tree.IsTernaryOperator(ancestors, t),
		})
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.MatchTree) {
		c := conditional{keyword: keywordOf(t.Keyword, t)}
		for _, matchCase := range t.Cases {
			if matchCase.Expression == nil {
				c.complete = true
			}
			c.branches = append(c.branches, matchCase.Body)
		}
		fn(ctx, c)
	})
}

// allIdentical reports whether every branch runs the same code and one of
// them always runs.
func (c conditional) allIdentical() bool {
	if !c.complete || len(c.branches) < 2 {
		return false
	}
	first := c.branches[0]
	for _, branch := range c.branches {
		if tree.IsNil(branch) || !equivalence.AreEquivalent(first, branch) {
			return false
		}
	}
	return true
}

// AllBranchesIdenticalCheck reports conditionals whose branches are all
// the same.
type AllBranchesIdenticalCheck struct {
	lint.BaseCheck
}

// NewAllBranchesIdenticalCheck creates a new all-branches-identical check.
func NewAllBranchesIdenticalCheck() *AllBranchesIdenticalCheck {
	return &AllBranchesIdenticalCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL103",
			"all-branches-identical",
			"All branches of a conditional structure should not have the same implementation",
			"duplication", "bug",
		),
	}
}

// Initialize registers the callbacks.
func (c *AllBranchesIdenticalCheck) Initialize(initCtx *lint.InitContext) error {
	registerConditionals(initCtx, func(ctx *lint.CheckContext, cond conditional) {
		if !cond.allIdentical() {
			return
		}
		if cond.ternary {
			ctx.ReportIssue(cond.keyword, `This conditional operation returns the same value whether the condition is "true" or "false".`)
			return
		}
		ctx.ReportIssue(cond.keyword, "Remove this conditional structure or edit its branches.")
	})
	return nil
}

// DuplicateBranchCheck reports branches repeating the code of an earlier
// branch of the same conditional. Single-line branches are left alone.
type DuplicateBranchCheck struct {
	lint.BaseCheck
}

// NewDuplicateBranchCheck creates a new duplicate-branch check.
func NewDuplicateBranchCheck() *DuplicateBranchCheck {
	return &DuplicateBranchCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL104",
			"duplicate-branch",
			"Branches of a conditional structure should not have the same implementation",
			"duplication",
		),
	}
}

// Initialize registers the callbacks.
func (c *DuplicateBranchCheck) Initialize(initCtx *lint.InitContext) error {
	registerConditionals(initCtx, func(ctx *lint.CheckContext, cond conditional) {
		if cond.allIdentical() {
			return
		}
		var branches []tree.Tree
		for _, branch := range cond.branches {
			if !tree.IsNil(branch) {
				branches = append(branches, branch)
			}
		}
		for _, group := range equivalence.FindDuplicatedGroups(branches) {
			original := group[0]
			for _, duplicate := range group[1:] {
				if !spansMultipleLines(duplicate) {
					continue
				}
				message := fmt.Sprintf("This branch's code block is the same as the block for the branch on line %d.",
					original.TextRange().Start.Line)
				ctx.ReportIssue(duplicate, message, lint.NewSecondaryLocation(original, "Original"))
			}
		}
	})
	return nil
}

// spansMultipleLines reports whether the code of a branch covers more than
// one line. Braces of a block do not count.
func spansMultipleLines(branch tree.Tree) bool {
	block, ok := branch.(*tree.BlockTree)
	if !ok {
		return lint.IsMultiLine(branch)
	}
	statements := block.StatementOrExpressions
	if len(statements) == 0 {
		return false
	}
	first, last := statements[0], statements[len(statements)-1]
	return first.TextRange().Start.Line != last.TextRange().End.Line
}

// DuplicatedFunctionCheck reports functions whose implementation repeats
// the one of a sibling function.
type DuplicatedFunctionCheck struct {
	lint.BaseCheck
}

// NewDuplicatedFunctionCheck creates a new duplicated-function check.
func NewDuplicatedFunctionCheck() *DuplicatedFunctionCheck {
	return &DuplicatedFunctionCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL105",
			"duplicated-function",
			"Functions should not have identical implementations",
			"duplication",
		),
	}
}

// minimumDuplicatedStatements is the smallest body compared; shorter
// functions are too often legitimately alike.
const minimumDuplicatedStatements = 2

// Initialize registers the callbacks.
func (c *DuplicatedFunctionCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, root *tree.TopLevelTree) {
		for _, siblings := range functionsByParent(root) {
			reportDuplicatedFunctions(ctx, siblings)
		}
	})
	return nil
}

// functionsByParent groups the functions of root, constructors excepted,
// by the node directly enclosing them. Groups come in the order of their
// first function.
func functionsByParent(root tree.Tree) [][]*tree.FunctionDeclarationTree {
	index := make(map[tree.Tree]int)
	var groups [][]*tree.FunctionDeclarationTree

	v := visit.NewVisitor()
	visit.On(v, func(walk *visit.Context, fn *tree.FunctionDeclarationTree) {
		if fn.IsConstructor {
			return
		}
		parent := walk.Parent()
		i, ok := index[parent]
		if !ok {
			i = len(groups)
			index[parent] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], fn)
	})
	v.Scan(visit.NewContext(), root)
	return groups
}

func reportDuplicatedFunctions(ctx *lint.CheckContext, functions []*tree.FunctionDeclarationTree) {
	reported := make([]bool, len(functions))
	for i, original := range functions {
		if reported[i] || lint.StatementCount(original) < minimumDuplicatedStatements {
			continue
		}
		for j := i + 1; j < len(functions); j++ {
			duplicate := functions[j]
			if reported[j] || !sameImplementation(original, duplicate) {
				continue
			}
			reported[j] = true

			line := original.TextRange().Start.Line
			message := fmt.Sprintf("Update this function so that its implementation is not identical to the one on line %d.", line)
			if original.Name != nil {
				message = fmt.Sprintf("Update this function so that its implementation is not identical to %s on line %d.",
					original.Name.Name, line)
			}
			ctx.ReportIssue(duplicate.RangeToHighlight(), message,
				lint.SecondaryLocation{Range: original.RangeToHighlight(), Message: "original implementation"})
		}
	}
}

func sameImplementation(a, b *tree.FunctionDeclarationTree) bool {
	return equivalence.AreEquivalentLists(a.NativeChildren, b.NativeChildren) &&
		equivalence.AreEquivalentLists(a.FormalParameters, b.FormalParameters) &&
		equivalence.AreEquivalent(a.Body, b.Body)
}

// StringLiteralDuplicatedCheck reports string literals repeated too often
// in a file.
type StringLiteralDuplicatedCheck struct {
	lint.BaseCheck
}

// NewStringLiteralDuplicatedCheck creates a new string-literal-duplicated
// check.
func NewStringLiteralDuplicatedCheck() *StringLiteralDuplicatedCheck {
	return &StringLiteralDuplicatedCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL106",
			"string-literal-duplicated",
			"String literals should not be duplicated",
			"duplication",
		),
	}
}

// minimalLiteralLength is the length a literal, quotes included, must
// exceed to be considered.
const minimalLiteralLength = 5

//nolint:gochecknoglobals // Compiled once
var wordOnly = regexp.MustCompile(`^\w+$`)

// Initialize reads the threshold and registers the callbacks.
//
// Options:
//   - threshold: occurrences from which a literal is reported (default 3)
func (c *StringLiteralDuplicatedCheck) Initialize(initCtx *lint.InitContext) error {
	threshold := initCtx.OptionInt("threshold", 3)

	lint.Register(initCtx, func(ctx *lint.CheckContext, root *tree.TopLevelTree) {
		var order []string
		occurrences := make(map[string][]*tree.StringLiteralTree)
		tree.Walk(root, func(t tree.Tree) bool {
			switch literal := t.(type) {
			case *tree.PackageDeclarationTree, *tree.ImportDeclarationTree:
				return false
			case *tree.StringLiteralTree:
				if len(literal.Value) <= minimalLiteralLength || wordOnly.MatchString(literal.Value) {
					return true
				}
				if _, seen := occurrences[literal.Content]; !seen {
					order = append(order, literal.Content)
				}
				occurrences[literal.Content] = append(occurrences[literal.Content], literal)
			}
			return true
		})

		for _, content := range order {
			literals := occurrences[content]
			if len(literals) < threshold {
				continue
			}
			secondaries := make([]lint.SecondaryLocation, 0, len(literals)-1)
			for _, literal := range literals[1:] {
				secondaries = append(secondaries, lint.NewSecondaryLocation(literal, "Duplication"))
			}
			message := fmt.Sprintf("Define a constant instead of duplicating this literal %q %d times.", content, len(literals))
			ctx.ReportIssueWithGap(literals[0], message, float64(len(literals)-1), secondaries...)
		}
	})
	return nil
}

// IdenticalBinaryOperandsCheck reports operators applied to two identical
// operands, where the result is constant or the code is a typo.
type IdenticalBinaryOperandsCheck struct {
	lint.BaseCheck
}

// NewIdenticalBinaryOperandsCheck creates a new identical-binary-operands
// check.
func NewIdenticalBinaryOperandsCheck() *IdenticalBinaryOperandsCheck {
	return &IdenticalBinaryOperandsCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL108",
			"identical-binary-operands",
			"Identical expressions should not be used on both sides of a binary operator",
			"duplication", "bug",
		),
	}
}

// Initialize registers the callbacks.
func (c *IdenticalBinaryOperandsCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.BinaryExpressionTree) {
		switch {
		case t.Operator.IsComparison(), t.Operator.IsLogical(),
			t.Operator == tree.OperatorMinus, t.Operator == tree.OperatorDividedBy:
		default:
			return
		}
		if !equivalence.AreEquivalent(t.LeftOperand, t.RightOperand) {
			return
		}
		ctx.ReportIssue(t.RightOperand, "Correct one of the identical sub-expressions on both sides of this operator.",
			lint.NewSecondaryLocation(t.LeftOperand, ""))
	})
	return nil
}

// IdenticalConditionsCheck reports conditions repeated in the same if
// chain or match statement; the later branch can never run.
type IdenticalConditionsCheck struct {
	lint.BaseCheck
}

// NewIdenticalConditionsCheck creates a new identical-conditions check.
func NewIdenticalConditionsCheck() *IdenticalConditionsCheck {
	return &IdenticalConditionsCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL120",
			"identical-conditions",
			"Related if/else if statements and cases should not have the same condition",
			"duplication", "bug",
		),
	}
}

// Initialize registers the callbacks.
func (c *IdenticalConditionsCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		if isChainHead(ctx.Ancestors(), t) {
			reportIdenticalConditions(ctx, lint.IfChainConditions(t))
		}
	})
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.MatchTree) {
		var conditions []tree.Tree
		for _, matchCase := range t.Cases {
			if matchCase.Expression != nil {
				conditions = append(conditions, matchCase.Expression)
			}
		}
		reportIdenticalConditions(ctx, conditions)
	})
	return nil
}

func reportIdenticalConditions(ctx *lint.CheckContext, conditions []tree.Tree) {
	for _, group := range equivalence.FindDuplicatedGroups(conditions) {
		original := group[0]
		for _, duplicate := range group[1:] {
			message := fmt.Sprintf("This condition duplicates the one on line %d.", original.TextRange().Start.Line)
			ctx.ReportIssue(duplicate, message, lint.NewSecondaryLocation(original, "Original"))
		}
	}
}
