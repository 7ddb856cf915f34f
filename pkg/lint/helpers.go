package lint

import (
	"unicode/utf8"

	"github.com/yaklabco/goslang/pkg/tree"
)

// EnclosingFunction returns the innermost function declaration among
// ancestors (innermost first), or nil.
func EnclosingFunction(ancestors []tree.Tree) *tree.FunctionDeclarationTree {
	for _, ancestor := range ancestors {
		if fn, ok := ancestor.(*tree.FunctionDeclarationTree); ok {
			return fn
		}
	}
	return nil
}

// IsNestedFunction reports whether a function declaration with these
// ancestors sits inside another function.
func IsNestedFunction(ancestors []tree.Tree) bool {
	return EnclosingFunction(ancestors) != nil
}

// IsPrivate reports whether fn carries the private modifier.
func IsPrivate(fn *tree.FunctionDeclarationTree) bool {
	return fn.HasModifier(tree.ModifierPrivate)
}

// IsJump reports whether t unconditionally leaves the enclosing block.
func IsJump(t tree.Tree) bool {
	switch t.(type) {
	case *tree.ReturnTree, *tree.ThrowTree, *tree.JumpTree:
		return true
	default:
		return false
	}
}

// HasComments reports whether any comment lies inside t.
func HasComments(t tree.Tree) bool {
	return len(t.MetaData().Comments()) > 0
}

// IsEmptyBlock reports whether block has no statement and no comment.
func IsEmptyBlock(block *tree.BlockTree) bool {
	return block != nil && len(block.StatementOrExpressions) == 0 && !HasComments(block)
}

// StatementCount returns the number of statements directly in the body of
// fn, zero when fn has no body.
func StatementCount(fn *tree.FunctionDeclarationTree) int {
	if fn.Body == nil {
		return 0
	}
	return len(fn.Body.StatementOrExpressions)
}

// IsMultiLine reports whether t spans more than one line.
func IsMultiLine(t tree.HasTextRange) bool {
	r := t.TextRange()
	return r.Start.Line != r.End.Line
}

// LineLength returns the length in characters of line n of file.
func LineLength(file *tree.File, n int) int {
	return utf8.RuneCountInString(file.Line(n))
}

// IfChainBranches collects the branches of an if/else-if/else chain
// starting at ifTree, in source order, and reports whether the chain ends
// with a bare else.
func IfChainBranches(ifTree *tree.IfTree) (branches []tree.Tree, hasElse bool) {
	current := ifTree
	for current != nil {
		branches = append(branches, current.ThenBranch)
		switch next := current.ElseBranch.(type) {
		case nil:
			return branches, false
		case *tree.IfTree:
			current = next
		default:
			return append(branches, next), true
		}
	}
	return branches, false
}

// IfChainConditions collects the conditions of an if/else-if chain
// starting at ifTree, in source order.
func IfChainConditions(ifTree *tree.IfTree) []tree.Tree {
	var conditions []tree.Tree
	for current := ifTree; current != nil; {
		conditions = append(conditions, current.Condition)
		next, ok := current.ElseBranch.(*tree.IfTree)
		if !ok {
			break
		}
		current = next
	}
	return conditions
}
