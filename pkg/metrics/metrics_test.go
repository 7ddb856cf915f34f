package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/metrics"
	"github.com/yaklabco/goslang/pkg/tree"
)

func kw(line, column int, text string) *tree.Token {
	return tree.NewToken(tree.Range(line, column, line, column+len(text)), text, tree.TokenKeyword)
}

func ident(name string) *tree.IdentifierTree {
	return tree.NewIdentifierTree(nil, name)
}

func block(statements ...tree.Tree) *tree.BlockTree {
	return tree.NewBlockTree(nil, statements)
}

func function(name string, body ...tree.Tree) *tree.FunctionDeclarationTree {
	return tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Name: ident(name), Body: block(body...)})
}

func ifStmt(line int, then tree.Tree) *tree.IfTree {
	return tree.NewIfTree(nil, ident("c"), then, nil, kw(line, 0, "if"), nil)
}

func logical(op tree.BinaryOperator, line, column int, left, right tree.Tree) *tree.BinaryExpressionTree {
	text := "&&"
	if op == tree.OperatorConditionalOr {
		text = "||"
	}
	return tree.NewBinaryExpressionTree(nil, op, tree.NewToken(tree.Range(line, column, line, column+2), text, tree.TokenOther), left, right)
}

func messages(c *metrics.CognitiveComplexity) []string {
	var out []string
	for _, increment := range c.Increments() {
		out = append(out, increment.Message())
	}
	return out
}

func TestCognitiveComplexity(t *testing.T) {
	t.Parallel()

	// if a {} else if b {} else {}
	elseIf := tree.NewIfTree(nil, ident("b"), block(), block(), kw(1, 15, "if"), kw(1, 21, "else"))
	chain := tree.NewIfTree(nil, ident("a"), block(), elseIf, kw(1, 0, "if"), kw(1, 10, "else"))

	// func outer() { inner := func() { if c {} } }
	nestedFunction := function("outer", tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{
		Body: block(ifStmt(2, block())),
	}))

	// if c { (function() { if d {} }) } at file scope
	fileScope := block(tree.NewIfTree(nil, ident("c"), block(
		tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Body: block(ifStmt(2, block()))}),
	), nil, kw(1, 0, "if"), nil))

	// class C { func m() { if c {} } } inside a loop
	class := tree.NewClassDeclarationTree(nil, ident("C"), block(function("m", ifStmt(3, block()))))
	loopWithClass := tree.NewLoopTree(nil, ident("x"), block(class), tree.LoopWhile, kw(1, 0, "while"))

	// a && b && c || d
	boolean := logical(tree.OperatorConditionalOr, 1, 12,
		logical(tree.OperatorConditionalAnd, 1, 7, logical(tree.OperatorConditionalAnd, 1, 2, ident("a"), ident("b")), ident("c")),
		ident("d"))

	// x = c ? a : b
	ternary := tree.NewIfTree(nil, ident("c"), ident("a"), ident("b"), kw(1, 6, "?"), kw(1, 10, ":"))
	assignment := tree.NewAssignmentExpressionTree(nil, tree.AssignEqual, ident("x"), ternary)

	label := tree.NewJumpTree(nil, ident("outer"), tree.JumpBreak, kw(4, 2, "break"))
	plainJump := tree.NewJumpTree(nil, nil, tree.JumpContinue, kw(5, 2, "continue"))

	match := tree.NewMatchTree(nil, ident("v"), []*tree.MatchCaseTree{
		tree.NewMatchCaseTree(nil, ident("1"), block(ifStmt(2, block()))),
	}, kw(1, 0, "switch"))

	exception := tree.NewExceptionHandlingTree(nil, block(), []*tree.CatchTree{
		tree.NewCatchTree(nil, ident("e"), block(), kw(1, 8, "catch")),
	}, nil, kw(1, 0, "try"))

	tests := []struct {
		name     string
		root     tree.Tree
		want     int
		messages []string
	}{
		{name: "no control flow", root: function("f", ident("x")), want: 0},
		{name: "single if", root: function("f", ifStmt(1, block())), want: 1, messages: []string{"+1"}},
		{
			name:     "nested if",
			root:     function("f", ifStmt(1, block(ifStmt(2, block())))),
			want:     3,
			messages: []string{"+1", "+2 (incl 1 for nesting)"},
		},
		{name: "else if chain", root: function("f", chain), want: 3, messages: []string{"+1", "+1", "+1"}},
		{name: "nested function adds nesting", root: nestedFunction, want: 2, messages: []string{"+2 (incl 1 for nesting)"}},
		{
			name:     "function literal in top-level control flow",
			root:     fileScope,
			want:     4,
			messages: []string{"+1", "+3 (incl 2 for nesting)"},
		},
		{name: "class resets nesting", root: function("f", loopWithClass), want: 2, messages: []string{"+1", "+1"}},
		{name: "logical operator runs", root: function("f", boolean), want: 2},
		{name: "ternary", root: function("f", assignment), want: 1, messages: []string{"+1"}},
		{name: "labeled jump only", root: function("f", label, plainJump), want: 1},
		{name: "match nests its cases", root: function("f", match), want: 3},
		{name: "catch", root: function("f", exception), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			complexity := metrics.NewCognitiveComplexity(tt.root)
			assert.Equal(t, tt.want, complexity.Value())
			if tt.messages != nil {
				assert.Equal(t, tt.messages, messages(complexity))
			}
		})
	}
}

func TestCognitiveComplexity_IncrementLocations(t *testing.T) {
	t.Parallel()

	inner := ifStmt(2, block())
	root := function("f", ifStmt(1, block(inner)))

	increments := metrics.NewCognitiveComplexity(root).Increments()
	require.Len(t, increments, 2)
	assert.Equal(t, tree.Range(1, 0, 1, 2), increments[0].Range)
	assert.Equal(t, tree.Range(2, 0, 2, 2), increments[1].Range)
	assert.Equal(t, 1, increments[1].NestingLevel)
	assert.Equal(t, 2, increments[1].Value())
}

func TestNestingLevel(t *testing.T) {
	t.Parallel()

	outer := function("f")
	elseIf := tree.NewIfTree(nil, ident("b"), block(), nil, kw(2, 0, "if"), nil)
	chain := tree.NewIfTree(nil, ident("a"), block(), elseIf, kw(1, 0, "if"), kw(1, 10, "else"))
	topLevelIf := tree.NewIfTree(nil, ident("c"), block(), nil, kw(5, 0, "if"), nil)
	literal := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Body: block()})

	tests := []struct {
		name      string
		ancestors []tree.Tree
		want      int
	}{
		{name: "function body", ancestors: []tree.Tree{block(), outer}, want: 0},
		{name: "inside else if", ancestors: []tree.Tree{elseIf.ThenBranch, elseIf, chain, outer}, want: 1},
		{name: "inside loop", ancestors: []tree.Tree{block(), tree.NewLoopTree(nil, nil, block(), tree.LoopFor, nil), outer}, want: 1},
		{name: "nested function", ancestors: []tree.Tree{block(), literal, outer}, want: 1},
		{name: "function literal in top-level if", ancestors: []tree.Tree{block(), literal, topLevelIf.ThenBranch, topLevelIf}, want: 2},
		{name: "top-level function literal", ancestors: []tree.Tree{block(), literal}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, metrics.NestingLevel(tt.ancestors))
		})
	}
}

func TestCyclomaticComplexity(t *testing.T) {
	t.Parallel()

	match := tree.NewMatchTree(nil, ident("v"), []*tree.MatchCaseTree{
		tree.NewMatchCaseTree(nil, ident("1"), block()),
		tree.NewMatchCaseTree(nil, nil, block()),
	}, kw(3, 0, "switch"))

	root := function("f",
		ifStmt(1, block()),
		tree.NewLoopTree(nil, ident("x"), block(), tree.LoopFor, kw(2, 0, "for")),
		match,
		logical(tree.OperatorConditionalAnd, 4, 2, ident("a"), ident("b")),
	)

	// function + if + loop + guarded case + &&
	assert.Len(t, metrics.CyclomaticComplexity(root), 5)

	anonymous := tree.NewFunctionDeclarationTree(nil, tree.FunctionParts{Body: block()})
	assert.Empty(t, metrics.CyclomaticComplexity(anonymous))
}

func TestCompute(t *testing.T) {
	t.Parallel()

	tokens := []*tree.Token{
		tree.NewToken(tree.Range(1, 0, 1, 4), "func", tree.TokenKeyword),
		tree.NewToken(tree.Range(1, 5, 1, 6), "f", tree.TokenOther),
		tree.NewToken(tree.Range(4, 1, 5, 3), "`raw\nx`", tree.TokenStringLiteral),
		tree.NewToken(tree.Range(6, 0, 6, 1), "}", tree.TokenOther),
	}
	comments := []*tree.Comment{
		tree.NewComment("/* a\n\n b */", " a\n\n b ", tree.Range(2, 0, 4, 4), tree.Range(2, 2, 4, 2)),
	}
	provider := tree.NewMetaDataProvider(comments, tokens, nil)

	class := tree.NewClassDeclarationTree(nil, ident("C"), block())
	fn := function("f", ifStmt(4, block(ident("y"))), ident("z"))
	root := tree.NewTopLevelTree(nil, []tree.Tree{fn, class, ident("top")}, comments, nil)
	file := tree.NewFile("a.go", "go", "", root, provider)

	got := metrics.Compute(file)

	assert.Equal(t, metrics.FileMetrics{
		LinesOfCode:         4, // 1, 4, 5, 6
		CommentLines:        2, // 2 and 4, the blank line 3 excluded
		Functions:           1,
		Classes:             1,
		Statements:          4, // top, if, z, y
		Complexity:          2,
		CognitiveComplexity: 1,
	}, got)

	var total metrics.FileMetrics
	total.Add(got)
	total.Add(got)
	assert.Equal(t, 2, total.Functions)
	assert.Equal(t, 8, total.LinesOfCode)

	assert.Equal(t, metrics.FileMetrics{}, metrics.Compute(nil))
}
