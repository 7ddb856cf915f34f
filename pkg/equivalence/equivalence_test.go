package equivalence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/tree"
)

func ident(line int, name string) *tree.IdentifierTree {
	provider := tree.NewMetaDataProvider(nil, nil, nil)
	return tree.NewIdentifierTree(provider.MetaData(tree.Range(line, 1, line, 1+len(name))), name)
}

func binary(operator tree.BinaryOperator, left, right tree.Tree) *tree.BinaryExpressionTree {
	return tree.NewBinaryExpressionTree(nil, operator, nil, left, right)
}

func TestAreEquivalent_IgnoresPosition(t *testing.T) {
	t.Parallel()

	first := binary(tree.OperatorPlus, ident(1, "a"), tree.NewIntegerLiteralTree(nil, "1"))
	second := binary(tree.OperatorPlus, ident(7, "a"), tree.NewIntegerLiteralTree(nil, "1"))

	assert.True(t, AreEquivalent(first, second))
	assert.True(t, AreEquivalent(second, first))
	assert.True(t, AreEquivalent(first, first))
}

func TestAreEquivalent_Differences(t *testing.T) {
	t.Parallel()

	base := binary(tree.OperatorPlus, ident(1, "a"), tree.NewIntegerLiteralTree(nil, "1"))

	tests := []struct {
		name  string
		other tree.Tree
	}{
		{"operator", binary(tree.OperatorMinus, ident(1, "a"), tree.NewIntegerLiteralTree(nil, "1"))},
		{"literal text", binary(tree.OperatorPlus, ident(1, "a"), tree.NewIntegerLiteralTree(nil, "2"))},
		{"identifier", binary(tree.OperatorPlus, ident(1, "b"), tree.NewIntegerLiteralTree(nil, "1"))},
		{"child order", binary(tree.OperatorPlus, tree.NewIntegerLiteralTree(nil, "1"), ident(1, "a"))},
		{"child count", binary(tree.OperatorPlus, ident(1, "a"), nil)},
		{"variant", tree.NewAssignmentExpressionTree(nil, tree.AssignPlusEqual, ident(1, "a"), tree.NewIntegerLiteralTree(nil, "1"))},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, AreEquivalent(base, tt.other))
			assert.False(t, AreEquivalent(tt.other, base))
		})
	}
}

func TestAreEquivalent_Nil(t *testing.T) {
	t.Parallel()

	var typedNil *tree.BlockTree
	assert.True(t, AreEquivalent(nil, nil))
	assert.True(t, AreEquivalent(nil, typedNil))
	assert.False(t, AreEquivalent(ident(1, "a"), nil))
}

func TestAreEquivalent_Discriminators(t *testing.T) {
	t.Parallel()

	forLoop := tree.NewLoopTree(nil, ident(1, "c"), tree.NewBlockTree(nil, nil), tree.LoopFor, nil)
	whileLoop := tree.NewLoopTree(nil, ident(1, "c"), tree.NewBlockTree(nil, nil), tree.LoopWhile, nil)
	assert.False(t, AreEquivalent(forLoop, whileLoop))

	brk := tree.NewJumpTree(nil, nil, tree.JumpBreak, nil)
	cont := tree.NewJumpTree(nil, nil, tree.JumpContinue, nil)
	assert.False(t, AreEquivalent(brk, cont))

	nativeA := tree.NewNativeTree(nil, tree.NewNativeKind("defer"), []tree.Tree{ident(1, "x")})
	nativeB := tree.NewNativeTree(nil, tree.NewNativeKind("defer"), []tree.Tree{ident(2, "x")})
	nativeC := tree.NewNativeTree(nil, tree.NewNativeKind("defer", "go"), []tree.Tree{ident(1, "x")})
	assert.True(t, AreEquivalent(nativeA, nativeB))
	assert.False(t, AreEquivalent(nativeA, nativeC))

	negate := tree.NewUnaryExpressionTree(nil, tree.UnaryNegate, ident(1, "x"))
	minus := tree.NewUnaryExpressionTree(nil, tree.UnaryMinus, ident(1, "x"))
	assert.False(t, AreEquivalent(negate, minus))

	str := tree.NewStringLiteralTree(nil, `"a"`, "a")
	raw := tree.NewStringLiteralTree(nil, "`a`", "a")
	assert.False(t, AreEquivalent(str, raw))
}

func TestAreEquivalent_Transitive(t *testing.T) {
	t.Parallel()

	build := func(line int) tree.Tree {
		return tree.NewBlockTree(nil, []tree.Tree{
			tree.NewReturnTree(nil, binary(tree.OperatorTimes, ident(line, "x"), ident(line, "y")), nil),
		})
	}
	a, b, c := build(1), build(2), build(3)

	require.True(t, AreEquivalent(a, b))
	require.True(t, AreEquivalent(b, c))
	assert.True(t, AreEquivalent(a, c))
}

func TestFindDuplicatedGroups(t *testing.T) {
	t.Parallel()

	x1, y, x2, z, x3 := ident(1, "x"), ident(2, "y"), ident(3, "x"), ident(4, "z"), ident(5, "x")
	items := []*tree.IdentifierTree{x1, y, x2, z, x3}

	groups := GroupEquivalent(items)
	require.Len(t, groups, 3)
	assert.Equal(t, []*tree.IdentifierTree{x1, x2, x3}, groups[0])
	assert.Equal(t, []*tree.IdentifierTree{y}, groups[1])

	duplicated := FindDuplicatedGroups(items)
	require.Len(t, duplicated, 1)
	assert.Len(t, duplicated[0], 3)

	assert.Empty(t, FindDuplicatedGroups([]*tree.IdentifierTree{x1, y}))
	assert.Empty(t, FindDuplicatedGroups[*tree.IdentifierTree](nil))
}

func TestUniqueIdentifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UniqueIdentifier(ident(1, "run")), UniqueIdentifier(ident(9, "run")))
	assert.Empty(t, UniqueIdentifier(nil))
}
