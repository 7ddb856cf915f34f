package tree

// SkipParentheses returns the expression inside any number of enclosing
// parentheses.
func SkipParentheses(t Tree) Tree {
	for {
		parenthesized, ok := t.(*ParenthesizedExpressionTree)
		if !ok || parenthesized.Expression == nil {
			return t
		}
		t = parenthesized.Expression
	}
}

// IsLogicalBinaryExpression reports whether t, parentheses skipped, is a
// conditional-and or conditional-or expression.
func IsLogicalBinaryExpression(t Tree) bool {
	binary, ok := SkipParentheses(t).(*BinaryExpressionTree)
	return ok && binary.Operator.IsLogical()
}

// IsElseIf reports whether ifTree is the else branch of parent, which then
// continues the same if chain.
func IsElseIf(parent Tree, ifTree *IfTree) bool {
	parentIf, ok := parent.(*IfTree)
	return ok && parentIf.ElseBranch == Tree(ifTree)
}

// IsTernaryOperator reports whether ifTree, given its ancestors innermost
// first, is a conditional expression rather than an if statement. The
// outermost if of an else-if chain decides: it is a statement when its
// parent holds statements, and an expression otherwise.
func IsTernaryOperator(ancestors []Tree, ifTree *IfTree) bool {
	if ifTree.ElseBranch == nil {
		return false
	}
	var child Tree = ifTree
	for _, parent := range ancestors {
		if parentIf, ok := parent.(*IfTree); ok && parentIf.ElseBranch == child {
			child = parent
			continue
		}
		return !holdsStatement(parent, child)
	}
	return false
}

func holdsStatement(parent, child Tree) bool {
	switch p := parent.(type) {
	case *BlockTree, *TopLevelTree, *FunctionDeclarationTree,
		*ExceptionHandlingTree, *CatchTree, *ClassDeclarationTree:
		return true
	case *MatchCaseTree:
		return p.Body == child
	case *LoopTree:
		return p.Body == child
	case *IfTree:
		return p.Condition != child
	default:
		return false
	}
}
