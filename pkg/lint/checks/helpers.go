package checks

import (
	"github.com/yaklabco/goslang/pkg/tree"
)

// keywordOf returns the range of keyword, or of the first token of t when
// the converter synthesized the construct without one.
func keywordOf(keyword *tree.Token, t tree.Tree) tree.TextRange {
	if keyword != nil {
		return keyword.Range
	}
	if first := t.MetaData().Provider().FirstToken(t.TextRange()); first != nil {
		return first.Range
	}
	return t.TextRange()
}

// keywordText returns the text of keyword, or of the first token of t.
func keywordText(keyword *tree.Token, t tree.Tree) string {
	if keyword != nil {
		return keyword.Text
	}
	if first := t.MetaData().Provider().FirstToken(t.TextRange()); first != nil {
		return first.Text
	}
	return ""
}

func parentOf(ancestors []tree.Tree) tree.Tree {
	if len(ancestors) == 0 {
		return nil
	}
	return ancestors[0]
}

// isChainHead reports whether ifTree starts an if chain rather than
// continuing one as an else-if.
func isChainHead(ancestors []tree.Tree, ifTree *tree.IfTree) bool {
	return !tree.IsElseIf(parentOf(ancestors), ifTree)
}

// hasHeader reports whether the condition of ifTree is a synthesized
// header, which holds an initializer statement besides the condition.
func hasHeader(ifTree *tree.IfTree) bool {
	_, ok := ifTree.Condition.(*tree.NativeTree)
	return ok
}

// pointerAfter returns the position reached by reading text from start.
func pointerAfter(start tree.TextPointer, text string) tree.TextPointer {
	line, offset := start.Line, start.LineOffset
	for _, r := range text {
		if r == '\n' {
			line++
			offset = 0
			continue
		}
		offset++
	}
	return tree.NewTextPointer(line, offset)
}
