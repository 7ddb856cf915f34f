package tree

import (
	"slices"
	"strings"
)

// AssignmentExpressionTree assigns Statement to LeftHandSide.
type AssignmentExpressionTree struct {
	node
	Operator     AssignmentOperator
	LeftHandSide Tree
	Statement    Tree
}

// NewAssignmentExpressionTree returns an assignment.
func NewAssignmentExpressionTree(meta *MetaData, operator AssignmentOperator, leftHandSide, statement Tree) *AssignmentExpressionTree {
	return &AssignmentExpressionTree{
		node:         node{metaData: meta},
		Operator:     operator,
		LeftHandSide: optional(leftHandSide),
		Statement:    optional(statement),
	}
}

func (*AssignmentExpressionTree) Kind() Kind { return KindAssignmentExpression }

func (t *AssignmentExpressionTree) Children() []Tree {
	var c children
	c.add(t.LeftHandSide)
	c.add(t.Statement)
	return c
}

// BinaryExpressionTree is a binary operation.
type BinaryExpressionTree struct {
	node
	Operator      BinaryOperator
	OperatorToken *Token
	LeftOperand   Tree
	RightOperand  Tree
}

// NewBinaryExpressionTree returns a binary expression.
func NewBinaryExpressionTree(meta *MetaData, operator BinaryOperator, operatorToken *Token, left, right Tree) *BinaryExpressionTree {
	return &BinaryExpressionTree{
		node:          node{metaData: meta},
		Operator:      operator,
		OperatorToken: operatorToken,
		LeftOperand:   optional(left),
		RightOperand:  optional(right),
	}
}

func (*BinaryExpressionTree) Kind() Kind { return KindBinaryExpression }

func (t *BinaryExpressionTree) Children() []Tree {
	var c children
	c.add(t.LeftOperand)
	c.add(t.RightOperand)
	return c
}

// UnaryExpressionTree is a prefix or postfix operation.
type UnaryExpressionTree struct {
	node
	Operator UnaryOperator
	Operand  Tree
}

// NewUnaryExpressionTree returns a unary expression.
func NewUnaryExpressionTree(meta *MetaData, operator UnaryOperator, operand Tree) *UnaryExpressionTree {
	return &UnaryExpressionTree{node: node{metaData: meta}, Operator: operator, Operand: optional(operand)}
}

func (*UnaryExpressionTree) Kind() Kind { return KindUnaryExpression }

func (t *UnaryExpressionTree) Children() []Tree {
	var c children
	c.add(t.Operand)
	return c
}

// ParenthesizedExpressionTree is an expression in parentheses.
type ParenthesizedExpressionTree struct {
	node
	Expression       Tree
	LeftParenthesis  *Token
	RightParenthesis *Token
}

// NewParenthesizedExpressionTree returns a parenthesized expression.
func NewParenthesizedExpressionTree(meta *MetaData, expression Tree, left, right *Token) *ParenthesizedExpressionTree {
	return &ParenthesizedExpressionTree{
		node:             node{metaData: meta},
		Expression:       optional(expression),
		LeftParenthesis:  left,
		RightParenthesis: right,
	}
}

func (*ParenthesizedExpressionTree) Kind() Kind { return KindParenthesizedExpression }

func (t *ParenthesizedExpressionTree) Children() []Tree {
	var c children
	c.add(t.Expression)
	return c
}

// FunctionInvocationTree is a call.
type FunctionInvocationTree struct {
	node
	MemberSelect Tree
	Arguments    []Tree
}

// NewFunctionInvocationTree returns a call of memberSelect.
func NewFunctionInvocationTree(meta *MetaData, memberSelect Tree, arguments []Tree) *FunctionInvocationTree {
	return &FunctionInvocationTree{
		node:         node{metaData: meta},
		MemberSelect: optional(memberSelect),
		Arguments:    compact(arguments),
	}
}

func (*FunctionInvocationTree) Kind() Kind { return KindFunctionInvocation }

func (t *FunctionInvocationTree) Children() []Tree {
	var c children
	c.add(t.MemberSelect)
	c.addAll(t.Arguments)
	return c
}

// MemberSelectTree selects Identifier on Expression.
type MemberSelectTree struct {
	node
	Expression Tree
	Identifier *IdentifierTree
}

// NewMemberSelectTree returns a member selection.
func NewMemberSelectTree(meta *MetaData, expression Tree, identifier *IdentifierTree) *MemberSelectTree {
	return &MemberSelectTree{node: node{metaData: meta}, Expression: optional(expression), Identifier: identifier}
}

func (*MemberSelectTree) Kind() Kind { return KindMemberSelect }

func (t *MemberSelectTree) Children() []Tree {
	var c children
	c.add(t.Expression)
	c.add(t.Identifier)
	return c
}

// IdentifierTree is a name.
type IdentifierTree struct {
	node
	Name string
}

// NewIdentifierTree returns an identifier.
func NewIdentifierTree(meta *MetaData, name string) *IdentifierTree {
	return &IdentifierTree{node: node{metaData: meta}, Name: name}
}

func (*IdentifierTree) Kind() Kind { return KindIdentifier }

func (*IdentifierTree) Children() []Tree { return nil }

// Identifier returns the name used to compare identifiers.
func (t *IdentifierTree) Identifier() string {
	return t.Name
}

// PlaceHolderTree is a blank identifier such as "_".
type PlaceHolderTree struct {
	node
	PlaceHolderToken *Token
}

// NewPlaceHolderTree returns a placeholder.
func NewPlaceHolderTree(meta *MetaData, token *Token) *PlaceHolderTree {
	return &PlaceHolderTree{node: node{metaData: meta}, PlaceHolderToken: token}
}

func (*PlaceHolderTree) Kind() Kind { return KindPlaceHolder }

func (*PlaceHolderTree) Children() []Tree { return nil }

// LiteralTree is a literal with no more specific variant, such as a
// boolean or a float.
type LiteralTree struct {
	node
	Value string
}

// NewLiteralTree returns a literal.
func NewLiteralTree(meta *MetaData, value string) *LiteralTree {
	return &LiteralTree{node: node{metaData: meta}, Value: value}
}

func (*LiteralTree) Kind() Kind { return KindLiteral }

func (*LiteralTree) Children() []Tree { return nil }

// IsBoolean reports whether the literal is true or false.
func (t *LiteralTree) IsBoolean() bool {
	return t.Value == "true" || t.Value == "false"
}

// IntegerLiteralTree is an integer literal as written, prefix included.
type IntegerLiteralTree struct {
	node
	Value string
}

// NewIntegerLiteralTree returns an integer literal.
func NewIntegerLiteralTree(meta *MetaData, value string) *IntegerLiteralTree {
	return &IntegerLiteralTree{node: node{metaData: meta}, Value: value}
}

func (*IntegerLiteralTree) Kind() Kind { return KindIntegerLiteral }

func (*IntegerLiteralTree) Children() []Tree { return nil }

// StringLiteralTree is a string literal. Value keeps the delimiters,
// Content does not.
type StringLiteralTree struct {
	node
	Value   string
	Content string
}

// NewStringLiteralTree returns a string literal.
func NewStringLiteralTree(meta *MetaData, value, content string) *StringLiteralTree {
	return &StringLiteralTree{node: node{metaData: meta}, Value: value, Content: content}
}

func (*StringLiteralTree) Kind() Kind { return KindStringLiteral }

func (*StringLiteralTree) Children() []Tree { return nil }

// NativeKind identifies a guest-language construct with no common-model
// variant. Two native trees are equivalent only if their kinds are equal.
type NativeKind struct {
	Name            string
	Differentiators []string
}

// NewNativeKind returns a native kind.
func NewNativeKind(name string, differentiators ...string) NativeKind {
	return NativeKind{Name: name, Differentiators: differentiators}
}

// Equal reports whether both kinds denote the same construct.
func (k NativeKind) Equal(other NativeKind) bool {
	return k.Name == other.Name && slices.Equal(k.Differentiators, other.Differentiators)
}

// String returns the name followed by its differentiators.
func (k NativeKind) String() string {
	if len(k.Differentiators) == 0 {
		return k.Name
	}
	return k.Name + "[" + strings.Join(k.Differentiators, ",") + "]"
}

// NativeTree wraps a construct with no common-model variant.
type NativeTree struct {
	node
	NativeKind NativeKind
	Elements   []Tree
}

// NewNativeTree returns a native tree.
func NewNativeTree(meta *MetaData, kind NativeKind, elements []Tree) *NativeTree {
	return &NativeTree{node: node{metaData: meta}, NativeKind: kind, Elements: compact(elements)}
}

func (*NativeTree) Kind() Kind { return KindNative }

func (t *NativeTree) Children() []Tree {
	var c children
	c.addAll(t.Elements)
	return c
}
