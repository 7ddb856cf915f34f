package checks

import (
	"fmt"

	"github.com/yaklabco/goslang/pkg/equivalence"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

// CollapsibleIfCheck reports an if without else whose only statement is
// another if without else.
type CollapsibleIfCheck struct {
	lint.BaseCheck
}

// NewCollapsibleIfCheck creates a new collapsible-if check.
func NewCollapsibleIfCheck() *CollapsibleIfCheck {
	return &CollapsibleIfCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL109",
			"collapsible-if",
			"Mergeable if statements should be combined",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *CollapsibleIfCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		if t.ElseBranch != nil || hasHeader(t) {
			return
		}
		inner := collapsibleIf(t.ThenBranch)
		if inner == nil {
			return
		}
		ctx.ReportIssue(keywordOf(inner.IfKeyword, inner), "Merge this if statement with the enclosing one.",
			lint.SecondaryLocation{Range: keywordOf(t.IfKeyword, t)})
	})
	return nil
}

func collapsibleIf(branch tree.Tree) *tree.IfTree {
	if block, ok := branch.(*tree.BlockTree); ok {
		if len(block.StatementOrExpressions) != 1 {
			return nil
		}
		branch = block.StatementOrExpressions[0]
	}
	inner, ok := branch.(*tree.IfTree)
	if !ok || inner.ElseBranch != nil || hasHeader(inner) {
		return nil
	}
	return inner
}

// EmptyBlockCheck reports blocks with neither code nor comment. Function
// bodies are left to SL125.
type EmptyBlockCheck struct {
	lint.BaseCheck
}

// NewEmptyBlockCheck creates a new empty-block check.
func NewEmptyBlockCheck() *EmptyBlockCheck {
	return &EmptyBlockCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL110",
			"empty-block",
			"Nested blocks of code should not be left empty",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *EmptyBlockCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, block *tree.BlockTree) {
		if _, ok := ctx.Parent().(*tree.FunctionDeclarationTree); ok {
			return
		}
		if lint.IsEmptyBlock(block) {
			ctx.ReportIssue(block, "Either remove or fill this block of code.")
		}
	})
	return nil
}

// CodeAfterJumpCheck reports statements following a return, throw, break
// or continue in the same block.
type CodeAfterJumpCheck struct {
	lint.BaseCheck
}

// NewCodeAfterJumpCheck creates a new code-after-jump check.
func NewCodeAfterJumpCheck() *CodeAfterJumpCheck {
	return &CodeAfterJumpCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL116",
			"code-after-jump",
			"All code should be reachable",
			"structure", "bug",
		),
	}
}

// Initialize registers the callbacks.
func (c *CodeAfterJumpCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, block *tree.BlockTree) {
		statements := block.StatementOrExpressions
		for i := 0; i+1 < len(statements); i++ {
			jump, next := statements[i], statements[i+1]
			if !lint.IsJump(jump) || reachableAfterJump(next) {
				continue
			}
			message := fmt.Sprintf("Refactor this piece of code to not have any dead code after this %q.", jumpKeyword(jump))
			ctx.ReportIssue(jump, message, lint.NewSecondaryLocation(next, "Dead code"))
			return
		}
	})
	return nil
}

// reachableAfterJump reports whether t may run even though it follows a
// jump: a hoisted function declaration or a label target.
func reachableAfterJump(t tree.Tree) bool {
	switch statement := t.(type) {
	case *tree.FunctionDeclarationTree:
		return true
	case *tree.NativeTree:
		return statement.NativeKind.Name == "labeled_statement"
	default:
		return false
	}
}

func jumpKeyword(t tree.Tree) string {
	switch jump := t.(type) {
	case *tree.ReturnTree:
		return keywordText(jump.Keyword, jump)
	case *tree.ThrowTree:
		return keywordText(jump.Keyword, jump)
	case *tree.JumpTree:
		return keywordText(jump.Keyword, jump)
	default:
		return keywordText(nil, t)
	}
}

// MatchWithoutElseCheck reports match statements without a default case.
// A select statement without default blocks on purpose and is not
// reported.
type MatchWithoutElseCheck struct {
	lint.BaseCheck
}

// NewMatchWithoutElseCheck creates a new match-without-else check.
func NewMatchWithoutElseCheck() *MatchWithoutElseCheck {
	return &MatchWithoutElseCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL119",
			"match-without-else",
			"Match statements should have a default case",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *MatchWithoutElseCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.MatchTree) {
		keyword := keywordText(t.Keyword, t)
		if keyword == "select" {
			return
		}
		for _, matchCase := range t.Cases {
			if matchCase.Expression == nil {
				return
			}
		}
		ctx.ReportIssue(keywordOf(t.Keyword, t), fmt.Sprintf("Add a default case to this %q.", keyword))
	})
	return nil
}

// ElseIfWithoutElseCheck reports if/else-if chains not ending with else,
// unless every branch leaves the enclosing block.
type ElseIfWithoutElseCheck struct {
	lint.BaseCheck
}

// NewElseIfWithoutElseCheck creates a new else-if-without-else check.
func NewElseIfWithoutElseCheck() *ElseIfWithoutElseCheck {
	return &ElseIfWithoutElseCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL124",
			"else-if-without-else",
			`"if ... else if" constructs should end with "else" clauses`,
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *ElseIfWithoutElseCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, t *tree.IfTree) {
		if _, ok := t.ElseBranch.(*tree.IfTree); !ok || !isChainHead(ctx.Ancestors(), t) {
			return
		}

		previous, last := t, t
		allJump := endsWithJump(t)
		for {
			next, ok := last.ElseBranch.(*tree.IfTree)
			if !ok {
				break
			}
			previous, last = last, next
			allJump = allJump && endsWithJump(last)
		}
		if allJump || last.ElseBranch != nil {
			return
		}

		at := keywordOf(last.IfKeyword, last)
		if previous.ElseKeyword != nil {
			at = tree.MergeRanges(previous.ElseKeyword.Range, at)
		}
		ctx.ReportIssue(at, `Add the missing "else" clause.`)
	})
	return nil
}

func endsWithJump(ifTree *tree.IfTree) bool {
	branch := ifTree.ThenBranch
	if block, ok := branch.(*tree.BlockTree); ok {
		if len(block.StatementOrExpressions) == 0 {
			return false
		}
		branch = block.StatementOrExpressions[len(block.StatementOrExpressions)-1]
	}
	return lint.IsJump(branch)
}

// EmptyFunctionCheck reports named functions with an empty body and no
// comment explaining why.
type EmptyFunctionCheck struct {
	lint.BaseCheck
}

// NewEmptyFunctionCheck creates a new empty-function check.
func NewEmptyFunctionCheck() *EmptyFunctionCheck {
	return &EmptyFunctionCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL125",
			"empty-function",
			"Functions should not be empty",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *EmptyFunctionCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, fn *tree.FunctionDeclarationTree) {
		// Anonymous functions are mostly no-op callbacks.
		if fn.Name == nil || fn.IsConstructor || fn.HasModifier(tree.ModifierOverride) {
			return
		}
		if lint.IsEmptyBlock(fn.Body) {
			ctx.ReportIssue(fn.Body, "Add a nested comment explaining why this function is empty or complete the implementation.")
		}
	})
	return nil
}

// UnusedFunctionParameterCheck reports parameters of private functions
// that the body never refers to.
type UnusedFunctionParameterCheck struct {
	lint.BaseCheck
}

// NewUnusedFunctionParameterCheck creates a new unused-function-parameter
// check.
func NewUnusedFunctionParameterCheck() *UnusedFunctionParameterCheck {
	return &UnusedFunctionParameterCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL126",
			"unused-function-parameter",
			"Unused function parameters should be removed",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *UnusedFunctionParameterCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, fn *tree.FunctionDeclarationTree) {
		if fn.Body == nil || fn.IsConstructor || !lint.IsPrivate(fn) || fn.HasModifier(tree.ModifierOverride) {
			return
		}

		used := make(map[string]bool)
		tree.Walk(fn.Body, func(t tree.Tree) bool {
			if identifier, ok := t.(*tree.IdentifierTree); ok {
				used[equivalence.UniqueIdentifier(identifier)] = true
			}
			return true
		})

		var unused []*tree.IdentifierTree
		for _, p := range fn.FormalParameters {
			parameter, ok := p.(*tree.ParameterTree)
			if !ok || parameter.Identifier == nil || len(parameter.Modifiers) > 0 {
				continue
			}
			name := equivalence.UniqueIdentifier(parameter.Identifier)
			if name == "_" || used[name] {
				continue
			}
			unused = append(unused, parameter.Identifier)
		}
		if len(unused) == 0 {
			return
		}

		secondaries := make([]lint.SecondaryLocation, 0, len(unused)-1)
		for _, identifier := range unused[1:] {
			secondaries = append(secondaries, lint.NewSecondaryLocation(identifier, fmt.Sprintf("Remove this unused function parameter %q.", identifier.Name)))
		}
		message := fmt.Sprintf("Remove this unused function parameter %q.", unused[0].Name)
		if len(unused) > 1 {
			message = "Remove these unused function parameters."
		}
		ctx.ReportIssue(unused[0], message, secondaries...)
	})
	return nil
}

// UnusedPrivateMethodCheck reports private methods of a top-level class
// that the class never refers to.
type UnusedPrivateMethodCheck struct {
	lint.BaseCheck
}

// NewUnusedPrivateMethodCheck creates a new unused-private-method check.
func NewUnusedPrivateMethodCheck() *UnusedPrivateMethodCheck {
	return &UnusedPrivateMethodCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL127",
			"unused-private-method",
			"Unused private methods should be removed",
			"structure",
		),
	}
}

// Initialize registers the callbacks.
func (c *UnusedPrivateMethodCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, class *tree.ClassDeclarationTree) {
		for _, ancestor := range ctx.Ancestors() {
			if _, nested := ancestor.(*tree.ClassDeclarationTree); nested {
				return
			}
		}

		var methods []*tree.FunctionDeclarationTree
		names := make(map[*tree.IdentifierTree]bool)
		used := make(map[string]bool)
		for _, t := range tree.Descendants(class) {
			if fn, ok := t.(*tree.FunctionDeclarationTree); ok {
				methods = append(methods, fn)
				if fn.Name != nil {
					names[fn.Name] = true
				}
			}
		}
		for _, t := range tree.Descendants(class) {
			if identifier, ok := t.(*tree.IdentifierTree); ok && !names[identifier] {
				used[equivalence.UniqueIdentifier(identifier)] = true
			}
		}

		for _, method := range methods {
			if method.Name == nil || method.IsConstructor || !lint.IsPrivate(method) {
				continue
			}
			if !used[equivalence.UniqueIdentifier(method.Name)] {
				ctx.ReportIssue(method.Name, fmt.Sprintf("Remove this unused private %q method.", method.Name.Name))
			}
		}
	})
	return nil
}
