// Package equivalence compares trees structurally, ignoring positions, and
// groups equivalent trees.
package equivalence

import (
	"github.com/yaklabco/goslang/pkg/tree"
)

// AreEquivalent reports whether a and b have the same structure: same
// variants, same discriminating values such as operators or literal text,
// and pairwise equivalent children. Two nil trees are equivalent.
func AreEquivalent(a, b tree.Tree) bool {
	aNil, bNil := tree.IsNil(a), tree.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Kind() != b.Kind() || !sameValue(a, b) {
		return false
	}
	return AreEquivalentLists(a.Children(), b.Children())
}

// AreEquivalentLists reports whether both lists have the same length and
// pairwise equivalent elements.
func AreEquivalentLists[T tree.Tree](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AreEquivalent(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameValue compares the non-child fields that distinguish two trees of
// the same kind.
func sameValue(a, b tree.Tree) bool {
	switch left := a.(type) {
	case *tree.IdentifierTree:
		return left.Name == b.(*tree.IdentifierTree).Name
	case *tree.LiteralTree:
		return left.Value == b.(*tree.LiteralTree).Value
	case *tree.IntegerLiteralTree:
		return left.Value == b.(*tree.IntegerLiteralTree).Value
	case *tree.StringLiteralTree:
		return left.Value == b.(*tree.StringLiteralTree).Value
	case *tree.BinaryExpressionTree:
		return left.Operator == b.(*tree.BinaryExpressionTree).Operator
	case *tree.UnaryExpressionTree:
		return left.Operator == b.(*tree.UnaryExpressionTree).Operator
	case *tree.AssignmentExpressionTree:
		return left.Operator == b.(*tree.AssignmentExpressionTree).Operator
	case *tree.LoopTree:
		return left.LoopKind == b.(*tree.LoopTree).LoopKind
	case *tree.JumpTree:
		return left.JumpKind == b.(*tree.JumpTree).JumpKind
	case *tree.ModifierTree:
		return left.Modifier == b.(*tree.ModifierTree).Modifier
	case *tree.NativeTree:
		return left.NativeKind.Equal(b.(*tree.NativeTree).NativeKind)
	case *tree.VariableDeclarationTree:
		return left.IsVal == b.(*tree.VariableDeclarationTree).IsVal
	case *tree.FunctionDeclarationTree:
		return left.IsConstructor == b.(*tree.FunctionDeclarationTree).IsConstructor
	case *tree.PlaceHolderTree:
		return tokenText(left.PlaceHolderToken) == tokenText(b.(*tree.PlaceHolderTree).PlaceHolderToken)
	default:
		return true
	}
}

func tokenText(token *tree.Token) string {
	if token == nil {
		return ""
	}
	return token.Text
}

// UniqueIdentifier returns the key identifying a name independently of
// where it occurs.
func UniqueIdentifier(identifier *tree.IdentifierTree) string {
	if identifier == nil {
		return ""
	}
	return identifier.Name
}

// GroupEquivalent partitions items into groups of mutually equivalent
// trees, each represented by its first member. Groups keep the order of
// their first members and members keep input order.
func GroupEquivalent[T tree.Tree](items []T) [][]T {
	var groups [][]T
	assigned := make([]bool, len(items))
	for i, item := range items {
		if assigned[i] {
			continue
		}
		group := []T{item}
		for j := i + 1; j < len(items); j++ {
			if !assigned[j] && AreEquivalent(item, items[j]) {
				group = append(group, items[j])
				assigned[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// FindDuplicatedGroups returns the groups of GroupEquivalent holding more
// than one tree.
func FindDuplicatedGroups[T tree.Tree](items []T) [][]T {
	var duplicated [][]T
	for _, group := range GroupEquivalent(items) {
		if len(group) > 1 {
			duplicated = append(duplicated, group)
		}
	}
	return duplicated
}
