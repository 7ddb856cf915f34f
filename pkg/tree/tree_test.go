package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snippet lays out words on one line, one token per word, separated by
// single spaces.
type snippet struct {
	provider *MetaDataProvider
	tokens   []*Token
}

func newSnippet(words ...string) *snippet {
	tokens := make([]*Token, 0, len(words))
	column := 1
	for _, word := range words {
		kind := TokenOther
		switch word {
		case "if", "else", "for", "return":
			kind = TokenKeyword
		}
		tokens = append(tokens, NewToken(Range(1, column, 1, column+len(word)), word, kind))
		column += len(word) + 1
	}
	return &snippet{provider: NewMetaDataProvider(nil, tokens, nil), tokens: tokens}
}

func (s *snippet) meta(from, to int) *MetaData {
	return s.provider.MetaData(NewTextRange(s.tokens[from].Range.Start, s.tokens[to].Range.End))
}

func (s *snippet) ident(index int) *IdentifierTree {
	return NewIdentifierTree(s.meta(index, index), s.tokens[index].Text)
}

// ifElse builds "if ( a ) { b } else { c }".
func (s *snippet) ifElse() *IfTree {
	condition := NewParenthesizedExpressionTree(s.meta(1, 3), s.ident(2), s.tokens[1], s.tokens[3])
	thenBlock := NewBlockTree(s.meta(4, 6), []Tree{s.ident(5)})
	elseBlock := NewBlockTree(s.meta(8, 10), []Tree{s.ident(9)})
	return NewIfTree(s.meta(0, 10), condition, thenBlock, elseBlock, s.tokens[0], s.tokens[7])
}

func TestIfTree_Children(t *testing.T) {
	t.Parallel()

	s := newSnippet("if", "(", "a", ")", "{", "b", "}", "else", "{", "c", "}")
	ifTree := s.ifElse()

	kids := ifTree.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, KindParenthesizedExpression, kids[0].Kind())
	assert.Equal(t, KindBlock, kids[1].Kind())
	assert.Equal(t, KindBlock, kids[2].Kind())

	tokens := ifTree.MetaData().Tokens()
	assert.Len(t, tokens, 11)
	for _, descendant := range Descendants(ifTree) {
		for _, token := range descendant.MetaData().Tokens() {
			assert.Contains(t, tokens, token)
		}
	}
}

func TestChildren_SkipTypedNil(t *testing.T) {
	t.Parallel()

	var missing *BlockTree
	ifTree := NewIfTree(nil, NewIdentifierTree(nil, "a"), missing, nil, nil, nil)

	assert.Nil(t, ifTree.ThenBranch)
	assert.Len(t, ifTree.Children(), 1)

	fn := NewFunctionDeclarationTree(nil, FunctionParts{})
	assert.Empty(t, fn.Children())
	assert.True(t, IsNil(missing))
	assert.False(t, IsNil(fn))
}

func TestLoopTree_ChildrenInSourceOrder(t *testing.T) {
	t.Parallel()

	// do { b } while ( a )
	s := newSnippet("do", "{", "b", "}", "while", "(", "a", ")")
	body := NewBlockTree(s.meta(1, 3), []Tree{s.ident(2)})
	condition := NewParenthesizedExpressionTree(s.meta(5, 7), s.ident(6), s.tokens[5], s.tokens[7])
	loop := NewLoopTree(s.meta(0, 7), condition, body, LoopDoWhile, s.tokens[0])

	kids := loop.Children()
	require.Len(t, kids, 2)
	assert.Same(t, Tree(body), kids[0])
	assert.Same(t, Tree(condition), kids[1])
}

func TestFunctionDeclarationTree_RangeToHighlight(t *testing.T) {
	t.Parallel()

	s := newSnippet("function", "f", "(", ")", "{", "}")
	named := NewFunctionDeclarationTree(s.meta(0, 5), FunctionParts{
		Name: s.ident(1),
		Body: NewBlockTree(s.meta(4, 5), nil),
	})
	assert.Equal(t, s.tokens[1].Range, named.RangeToHighlight())

	anonymous := NewFunctionDeclarationTree(s.meta(0, 5), FunctionParts{Body: NewBlockTree(s.meta(4, 5), nil)})
	assert.Equal(t, s.tokens[0].Range, anonymous.RangeToHighlight())
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	s := newSnippet("if", "(", "a", ")", "{", "b", "}", "else", "{", "c", "}")
	identifiers := FindAll[*IdentifierTree](s.ifElse())

	names := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		names = append(names, id.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.True(t, Contains(s.ifElse(), func(n Tree) bool { return n.Kind() == KindBlock }))
	assert.False(t, Contains(s.ifElse(), func(n Tree) bool { return n.Kind() == KindLoop }))
}

func TestIsTernaryOperator(t *testing.T) {
	t.Parallel()

	ternary := NewIfTree(nil, NewIdentifierTree(nil, "a"), NewIntegerLiteralTree(nil, "1"), NewIntegerLiteralTree(nil, "2"), nil, nil)
	assignment := NewAssignmentExpressionTree(nil, AssignEqual, NewIdentifierTree(nil, "x"), ternary)
	block := NewBlockTree(nil, []Tree{assignment})
	assert.True(t, IsTernaryOperator([]Tree{assignment, block}, ternary))

	statement := NewIfTree(nil, NewIdentifierTree(nil, "a"), NewBlockTree(nil, nil), NewBlockTree(nil, nil), nil, nil)
	outer := NewBlockTree(nil, []Tree{statement})
	assert.False(t, IsTernaryOperator([]Tree{outer}, statement))

	elseIf := NewIfTree(nil, NewIdentifierTree(nil, "b"), NewBlockTree(nil, nil), NewBlockTree(nil, nil), nil, nil)
	chain := NewIfTree(nil, NewIdentifierTree(nil, "a"), NewBlockTree(nil, nil), elseIf, nil, nil)
	assert.False(t, IsTernaryOperator([]Tree{chain, outer}, elseIf))
	assert.True(t, IsElseIf(chain, elseIf))
	assert.False(t, IsElseIf(outer, elseIf))

	noElse := NewIfTree(nil, NewIdentifierTree(nil, "a"), NewIntegerLiteralTree(nil, "1"), nil, nil, nil)
	assert.False(t, IsTernaryOperator([]Tree{assignment}, noElse))
}

func TestSkipParentheses(t *testing.T) {
	t.Parallel()

	inner := NewBinaryExpressionTree(nil, OperatorConditionalAnd, nil, NewIdentifierTree(nil, "a"), NewIdentifierTree(nil, "b"))
	wrapped := NewParenthesizedExpressionTree(nil, NewParenthesizedExpressionTree(nil, inner, nil, nil), nil, nil)

	assert.Same(t, Tree(inner), SkipParentheses(wrapped))
	assert.True(t, IsLogicalBinaryExpression(wrapped))
	assert.False(t, IsLogicalBinaryExpression(NewIdentifierTree(nil, "a")))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	s := newSnippet("if", "(", "a", ")", "{", "b", "}", "else", "{", "c", "}")
	assert.Empty(t, Validate(s.ifElse()))

	// The then branch claims the condition's tokens.
	condition := s.ident(2)
	overlapping := NewBlockTree(s.meta(1, 6), []Tree{s.ident(5)})
	bad := NewIfTree(s.meta(0, 6), condition, overlapping, nil, s.tokens[0], nil)
	violations := Validate(bad)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0].Message, "already belongs to sibling")

	// A child outside its parent.
	outside := NewBlockTree(s.meta(4, 6), []Tree{s.ident(9)})
	assert.NotEmpty(t, Validate(outside))

	// Identifiers cover exactly one token.
	wide := NewIdentifierTree(s.meta(1, 3), "a")
	assert.NotEmpty(t, Validate(wide))

	// Missing metadata.
	assert.NotEmpty(t, Validate(NewIdentifierTree(nil, "a")))
	assert.NotEmpty(t, Validate(nil))
}

func TestTextRange(t *testing.T) {
	t.Parallel()

	outer := Range(1, 1, 3, 5)
	assert.True(t, Range(2, 1, 2, 4).IsInside(outer))
	assert.True(t, outer.IsInside(outer))
	assert.False(t, Range(3, 1, 3, 6).IsInside(outer))
	assert.True(t, Range(3, 4, 4, 1).Overlaps(outer))
	assert.False(t, Range(3, 5, 4, 1).Overlaps(outer))
	assert.Equal(t, Range(1, 1, 4, 1), MergeRanges(outer, Range(3, 5, 4, 1)))
	assert.True(t, NewTextPointer(1, 9).Before(NewTextPointer(2, 0)))
}

func TestFile_Lines(t *testing.T) {
	t.Parallel()

	file := NewFile("a.go", "go", "package a\r\n\nfunc f() {}\n", nil, nil)
	assert.Equal(t, []string{"package a", "", "func f() {}"}, file.Lines())
	assert.Equal(t, "func f() {}", file.Line(3))
	assert.Empty(t, file.Line(0))
	assert.Empty(t, file.Line(4))
	assert.Empty(t, SplitLines(""))
}
