package tree

import (
	"fmt"
	"unicode"
)

// Violation is one well-formedness problem found in converter output.
type Violation struct {
	Node    Tree
	Message string
}

// String returns the violation with the node's kind and range.
func (v Violation) String() string {
	if IsNil(v.Node) {
		return v.Message
	}
	return fmt.Sprintf("%s %s: %s", v.Node.Kind(), v.Node.TextRange(), v.Message)
}

// Validate checks the consistency of a converted tree and returns every
// violation found, in pre-order. A nil result means the tree is well formed.
//
// Every node must have metadata bound to a provider and every child must
// lie inside its parent. No token may be covered by two siblings, and a
// node other than a leaf or a native tree may not own a name or literal
// token outside its children. Identifiers and placeholders cover exactly
// one token, and annotations start at a token.
func Validate(root Tree) []Violation {
	if IsNil(root) {
		return []Violation{{Message: "nil root"}}
	}
	var violations []Violation
	report := func(node Tree, format string, args ...any) {
		violations = append(violations, Violation{Node: node, Message: fmt.Sprintf(format, args...)})
	}

	Walk(root, func(node Tree) bool {
		if node.MetaData() == nil || node.MetaData().Provider() == nil {
			report(node, "missing metadata")
			return false
		}
		validateChildren(node, report)
		validateLeaf(node, report)
		validateOwnTokens(node, report)
		return true
	})

	if provider := root.MetaData().Provider(); provider != nil {
		validateAnnotations(root, provider, report)
	}
	return violations
}

type reportFunc func(node Tree, format string, args ...any)

func validateChildren(node Tree, report reportFunc) {
	owners := make(map[*Token]Tree)
	for _, child := range node.Children() {
		if !child.TextRange().IsInside(node.TextRange()) {
			report(child, "range is outside parent %s %s", node.Kind(), node.TextRange())
		}
		for _, token := range child.MetaData().Tokens() {
			if previous, ok := owners[token]; ok {
				report(child, "token %q at %s already belongs to sibling %s %s",
					token.Text, token.Range, previous.Kind(), previous.TextRange())
				continue
			}
			owners[token] = child
		}
	}
}

func validateLeaf(node Tree, report reportFunc) {
	switch node.(type) {
	case *IdentifierTree, *PlaceHolderTree:
		if count := len(node.MetaData().Tokens()); count != 1 {
			report(node, "expected one token, found %d", count)
		}
	}
}

func validateAnnotations(root Tree, provider *MetaDataProvider, report reportFunc) {
	for _, annotation := range provider.AllAnnotations() {
		token := provider.FirstToken(annotation.Range)
		if token == nil || token.Range.Start != annotation.Range.Start {
			report(root, "annotation %q at %s does not start at a token", annotation.ShortName, annotation.Range)
		}
	}
}

func validateOwnTokens(node Tree, report reportFunc) {
	switch node.(type) {
	case *NativeTree, *LiteralTree, *IntegerLiteralTree, *StringLiteralTree,
		*IdentifierTree, *PlaceHolderTree, *ModifierTree:
		return
	}
	var covered []TextRange
	for _, child := range node.Children() {
		covered = append(covered, child.TextRange())
	}
	for _, token := range node.MetaData().Tokens() {
		if !isValueToken(token) || insideAny(token.Range, covered) {
			continue
		}
		report(node, "unexpected token %q at %s", token.Text, token.Range)
	}
}

// isValueToken reports whether token is a name or a literal, as opposed to
// a keyword or punctuation.
func isValueToken(token *Token) bool {
	switch token.Kind {
	case TokenStringLiteral:
		return true
	case TokenKeyword:
		return false
	}
	for _, r := range token.Text {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
	}
	return false
}

func insideAny(r TextRange, ranges []TextRange) bool {
	for _, candidate := range ranges {
		if r.IsInside(candidate) {
			return true
		}
	}
	return false
}
