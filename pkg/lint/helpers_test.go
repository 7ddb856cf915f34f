package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

func block(statements ...tree.Tree) *tree.BlockTree {
	return tree.NewBlockTree(nil, statements)
}

func ident(name string) *tree.IdentifierTree {
	return tree.NewIdentifierTree(nil, name)
}

func TestEnclosingFunction(t *testing.T) {
	t.Parallel()

	inner := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Name: ident("inner")})
	outer := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Name: ident("outer")})
	root := tree.NewTopLevelTree(nil, nil, nil, nil)

	assert.Same(t, inner, lint.EnclosingFunction([]tree.Tree{block(), inner, outer, root}))
	assert.Nil(t, lint.EnclosingFunction([]tree.Tree{block(), root}))
	assert.True(t, lint.IsNestedFunction([]tree.Tree{outer, root}))
	assert.False(t, lint.IsNestedFunction([]tree.Tree{root}))
}

func TestIsPrivate(t *testing.T) {
	t.Parallel()

	private := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{
		Modifiers: []tree.Tree{tree.NewModifierTree(nil, tree.ModifierPrivate)},
	})
	public := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{})

	assert.True(t, lint.IsPrivate(private))
	assert.False(t, lint.IsPrivate(public))
}

func TestIsJump(t *testing.T) {
	t.Parallel()

	assert.True(t, lint.IsJump(tree.NewReturnTree(nil, nil, nil)))
	assert.True(t, lint.IsJump(tree.NewThrowTree(nil, ident("e"), nil)))
	assert.True(t, lint.IsJump(tree.NewJumpTree(nil, nil, tree.JumpBreak, nil)))
	assert.False(t, lint.IsJump(ident("x")))
}

func TestIsEmptyBlock(t *testing.T) {
	t.Parallel()

	assert.True(t, lint.IsEmptyBlock(block()))
	assert.False(t, lint.IsEmptyBlock(block(ident("x"))))
	assert.False(t, lint.IsEmptyBlock(nil))

	// { /* note */ }
	comment := tree.NewComment("/* note */", " note ", tree.Range(1, 2, 1, 12), tree.Range(1, 4, 1, 10))
	open := tree.NewToken(tree.Range(1, 0, 1, 1), "{", tree.TokenOther)
	closing := tree.NewToken(tree.Range(1, 13, 1, 14), "}", tree.TokenOther)
	provider := tree.NewMetaDataProvider([]*tree.Comment{comment}, []*tree.Token{open, closing}, nil)
	commented := tree.NewBlockTree(provider.MetaData(tree.Range(1, 0, 1, 14)), nil)

	assert.True(t, lint.HasComments(commented))
	assert.False(t, lint.IsEmptyBlock(commented))
}

func TestStatementCount(t *testing.T) {
	t.Parallel()

	withBody := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Body: block(ident("a"), ident("b"))})
	abstract := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{})

	assert.Equal(t, 2, lint.StatementCount(withBody))
	assert.Equal(t, 0, lint.StatementCount(abstract))
}

func TestIsMultiLine(t *testing.T) {
	t.Parallel()

	assert.False(t, lint.IsMultiLine(tree.Range(2, 0, 2, 9)))
	assert.True(t, lint.IsMultiLine(tree.Range(2, 0, 3, 1)))
}

func TestLineLength(t *testing.T) {
	t.Parallel()

	file := tree.NewFile("a.go", "go", "ab\nhéllo\n", nil, nil)

	assert.Equal(t, 2, lint.LineLength(file, 1))
	assert.Equal(t, 5, lint.LineLength(file, 2))
	assert.Equal(t, 0, lint.LineLength(file, 9))
}

func TestIfChain(t *testing.T) {
	t.Parallel()

	// if a { x } else if b { y } else { z }
	last := tree.NewIfTree(nil, ident("b"), block(ident("y")), block(ident("z")), nil, nil)
	first := tree.NewIfTree(nil, ident("a"), block(ident("x")), last, nil, nil)

	branches, hasElse := lint.IfChainBranches(first)
	require.Len(t, branches, 3)
	assert.True(t, hasElse)

	conditions := lint.IfChainConditions(first)
	require.Len(t, conditions, 2)
	assert.Equal(t, "b", conditions[1].(*tree.IdentifierTree).Name)

	// if a { x } else if b { y }
	open := tree.NewIfTree(nil, ident("a"), block(ident("x")),
		tree.NewIfTree(nil, ident("b"), block(ident("y")), nil, nil, nil), nil, nil)

	branches, hasElse = lint.IfChainBranches(open)
	assert.Len(t, branches, 2)
	assert.False(t, hasElse)
}
