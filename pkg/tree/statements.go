package tree

// BlockTree is a sequence of statements or expressions.
type BlockTree struct {
	node
	StatementOrExpressions []Tree
}

// NewBlockTree returns a block.
func NewBlockTree(meta *MetaData, statements []Tree) *BlockTree {
	return &BlockTree{node: node{metaData: meta}, StatementOrExpressions: compact(statements)}
}

func (*BlockTree) Kind() Kind { return KindBlock }

func (t *BlockTree) Children() []Tree {
	var c children
	c.addAll(t.StatementOrExpressions)
	return c
}

// IfTree is a conditional statement or a conditional expression.
// ElseBranch is nil without else; an else-if chain nests another IfTree
// as ElseBranch.
type IfTree struct {
	node
	Condition   Tree
	ThenBranch  Tree
	ElseBranch  Tree
	IfKeyword   *Token
	ElseKeyword *Token
}

// NewIfTree returns a conditional.
func NewIfTree(meta *MetaData, condition, thenBranch, elseBranch Tree, ifKeyword, elseKeyword *Token) *IfTree {
	return &IfTree{
		node:        node{metaData: meta},
		Condition:   optional(condition),
		ThenBranch:  optional(thenBranch),
		ElseBranch:  optional(elseBranch),
		IfKeyword:   ifKeyword,
		ElseKeyword: elseKeyword,
	}
}

func (*IfTree) Kind() Kind { return KindIf }

func (t *IfTree) Children() []Tree {
	var c children
	c.add(t.Condition)
	c.add(t.ThenBranch)
	c.add(t.ElseBranch)
	return c
}

// LoopTree is a for, while or do-while loop.
type LoopTree struct {
	node
	Condition Tree
	Body      Tree
	LoopKind  LoopKind
	Keyword   *Token
}

// NewLoopTree returns a loop.
func NewLoopTree(meta *MetaData, condition, body Tree, kind LoopKind, keyword *Token) *LoopTree {
	return &LoopTree{
		node:      node{metaData: meta},
		Condition: optional(condition),
		Body:      optional(body),
		LoopKind:  kind,
		Keyword:   keyword,
	}
}

func (*LoopTree) Kind() Kind { return KindLoop }

func (t *LoopTree) Children() []Tree {
	var c children
	c.add(t.Condition)
	c.add(t.Body)
	return c.sorted()
}

// MatchTree is a switch-like construct.
type MatchTree struct {
	node
	Expression Tree
	Cases      []*MatchCaseTree
	Keyword    *Token
}

// NewMatchTree returns a match.
func NewMatchTree(meta *MetaData, expression Tree, cases []*MatchCaseTree, keyword *Token) *MatchTree {
	return &MatchTree{
		node:       node{metaData: meta},
		Expression: optional(expression),
		Cases:      cases,
		Keyword:    keyword,
	}
}

func (*MatchTree) Kind() Kind { return KindMatch }

func (t *MatchTree) Children() []Tree {
	var c children
	c.add(t.Expression)
	c.addAll(toTrees(t.Cases))
	return c
}

// MatchCaseTree is one case of a MatchTree. Expression is nil for the
// default case.
type MatchCaseTree struct {
	node
	Expression Tree
	Body       Tree
}

// NewMatchCaseTree returns a match case.
func NewMatchCaseTree(meta *MetaData, expression, body Tree) *MatchCaseTree {
	return &MatchCaseTree{
		node:       node{metaData: meta},
		Expression: optional(expression),
		Body:       optional(body),
	}
}

func (*MatchCaseTree) Kind() Kind { return KindMatchCase }

func (t *MatchCaseTree) Children() []Tree {
	var c children
	c.add(t.Expression)
	c.add(t.Body)
	return c
}

// RangeToHighlight returns the range from the case start to its body, or
// the whole case when it has no body.
func (t *MatchCaseTree) RangeToHighlight() TextRange {
	if t.Body == nil {
		return t.TextRange()
	}
	return NewTextRange(t.TextRange().Start, t.Body.TextRange().Start)
}

// ExceptionHandlingTree is a try statement.
type ExceptionHandlingTree struct {
	node
	TryBlock     Tree
	CatchBlocks  []*CatchTree
	FinallyBlock Tree
	TryKeyword   *Token
}

// NewExceptionHandlingTree returns a try statement.
func NewExceptionHandlingTree(meta *MetaData, tryBlock Tree, catchBlocks []*CatchTree, finallyBlock Tree, tryKeyword *Token) *ExceptionHandlingTree {
	return &ExceptionHandlingTree{
		node:         node{metaData: meta},
		TryBlock:     optional(tryBlock),
		CatchBlocks:  catchBlocks,
		FinallyBlock: optional(finallyBlock),
		TryKeyword:   tryKeyword,
	}
}

func (*ExceptionHandlingTree) Kind() Kind { return KindExceptionHandling }

func (t *ExceptionHandlingTree) Children() []Tree {
	var c children
	c.add(t.TryBlock)
	c.addAll(toTrees(t.CatchBlocks))
	c.add(t.FinallyBlock)
	return c
}

// CatchTree is one catch clause of an ExceptionHandlingTree.
type CatchTree struct {
	node
	CatchParameter Tree
	CatchBlock     Tree
	Keyword        *Token
}

// NewCatchTree returns a catch clause.
func NewCatchTree(meta *MetaData, parameter, block Tree, keyword *Token) *CatchTree {
	return &CatchTree{
		node:           node{metaData: meta},
		CatchParameter: optional(parameter),
		CatchBlock:     optional(block),
		Keyword:        keyword,
	}
}

func (*CatchTree) Kind() Kind { return KindCatch }

func (t *CatchTree) Children() []Tree {
	var c children
	c.add(t.CatchParameter)
	c.add(t.CatchBlock)
	return c
}

// JumpTree is a break or continue, optionally labelled.
type JumpTree struct {
	node
	Label    *IdentifierTree
	JumpKind JumpKind
	Keyword  *Token
}

// NewJumpTree returns a jump.
func NewJumpTree(meta *MetaData, label *IdentifierTree, kind JumpKind, keyword *Token) *JumpTree {
	return &JumpTree{node: node{metaData: meta}, Label: label, JumpKind: kind, Keyword: keyword}
}

func (*JumpTree) Kind() Kind { return KindJump }

func (t *JumpTree) Children() []Tree {
	var c children
	c.add(t.Label)
	return c
}

// ReturnTree is a return statement with an optional value.
type ReturnTree struct {
	node
	Body    Tree
	Keyword *Token
}

// NewReturnTree returns a return statement.
func NewReturnTree(meta *MetaData, body Tree, keyword *Token) *ReturnTree {
	return &ReturnTree{node: node{metaData: meta}, Body: optional(body), Keyword: keyword}
}

func (*ReturnTree) Kind() Kind { return KindReturn }

func (t *ReturnTree) Children() []Tree {
	var c children
	c.add(t.Body)
	return c
}

// ThrowTree is a throw statement.
type ThrowTree struct {
	node
	Body    Tree
	Keyword *Token
}

// NewThrowTree returns a throw statement.
func NewThrowTree(meta *MetaData, body Tree, keyword *Token) *ThrowTree {
	return &ThrowTree{node: node{metaData: meta}, Body: optional(body), Keyword: keyword}
}

func (*ThrowTree) Kind() Kind { return KindThrow }

func (t *ThrowTree) Children() []Tree {
	var c children
	c.add(t.Body)
	return c
}
