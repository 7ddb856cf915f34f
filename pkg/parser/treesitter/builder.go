package treesitter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/yaklabco/goslang/pkg/tree"
)

// builder holds the state of one conversion: the source, its lexical
// inventory and the metadata index the tree is built on.
type builder struct {
	grammar    *grammar
	content    []byte
	lineStarts []int

	tokens      []*tree.Token
	comments    []*tree.Comment
	annotations []*tree.Annotation
	contextual  []*tree.Token
	provider    *tree.MetaDataProvider

	// err is the first index misuse met while mapping.
	err error
}

func newBuilder(g *grammar, content []byte) *builder {
	lineStarts := []int{0}
	for i, c := range content {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &builder{grammar: g, content: content, lineStarts: lineStarts}
}

// build collects the lexical inventory of root, indexes it and maps the
// CST onto the common tree.
func (b *builder) build(path string, root *sitter.Node) (*tree.File, error) {
	b.collect(root)
	b.provider = tree.NewMetaDataProvider(b.comments, b.tokens, b.annotations)

	for _, token := range b.contextual {
		if _, err := b.provider.UpdateTokenType(token, tree.TokenKeyword); err != nil {
			return nil, fmt.Errorf("convert %s: %w", path, err)
		}
	}

	top := b.grammar.topLevel(b, root)
	if b.err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, b.err)
	}
	return tree.NewFile(path, b.grammar.name, string(b.content), top, b.provider), nil
}

// syntaxError locates the first ERROR or MISSING node under root.
func (b *builder) syntaxError(root *sitter.Node) *tree.ParseError {
	bad := firstError(root)
	if bad == nil {
		return tree.NewParseError("syntax error", nil)
	}
	pointer := b.pointer(bad.StartByte(), bad.StartPosition())
	if bad.IsMissing() {
		return tree.NewParseError(fmt.Sprintf("missing %s", bad.Kind()), &pointer)
	}
	snippet := strings.TrimSpace(bad.Utf8Text(b.content))
	if line, _, found := strings.Cut(snippet, "\n"); found {
		snippet = line
	}
	const maxSnippet = 40
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet]
	}
	return tree.NewParseError(fmt.Sprintf("syntax error near %q", snippet), &pointer)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := range n.ChildCount() {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// collect walks the CST in source order and records tokens, comments and
// annotations.
func (b *builder) collect(n *sitter.Node) {
	kind := n.Kind()
	if b.grammar.commentKinds[kind] {
		b.comments = append(b.comments, b.comment(n))
		return
	}
	if b.grammar.annotation != nil {
		if annotation := b.grammar.annotation(b, n); annotation != nil {
			b.annotations = append(b.annotations, annotation)
		}
	}
	if b.grammar.isLeaf(n) {
		b.token(n)
		return
	}
	for i := range n.ChildCount() {
		b.collect(n.Child(i))
	}
}

func (b *builder) token(n *sitter.Node) {
	text := n.Utf8Text(b.content)
	if strings.TrimSpace(text) == "" {
		// Statement terminators made of a newline carry no text.
		return
	}
	kind := tree.TokenOther
	switch {
	case b.grammar.stringKinds[n.Kind()], b.grammar.templateKinds[n.Kind()]:
		kind = tree.TokenStringLiteral
	case b.grammar.identifierKinds[n.Kind()]:
	case b.grammar.keywords[text]:
		kind = tree.TokenKeyword
	}
	token := tree.NewToken(b.rangeOf(n), text, kind)
	b.tokens = append(b.tokens, token)
	if !n.IsNamed() && b.grammar.contextualKeywords[text] {
		b.contextual = append(b.contextual, token)
	}
}

func (b *builder) comment(n *sitter.Node) *tree.Comment {
	text := n.Utf8Text(b.content)
	textRange := b.rangeOf(n)
	content, contentRange := text, textRange
	switch {
	case strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/") && len(text) >= 4:
		content = text[2 : len(text)-2]
		contentRange = tree.NewTextRange(shift(textRange.Start, 2), shift(textRange.End, -2))
	case strings.HasPrefix(text, "//"), strings.HasPrefix(text, "#!"):
		content = text[2:]
		contentRange = tree.NewTextRange(shift(textRange.Start, 2), textRange.End)
	case strings.HasPrefix(text, "<!--"):
		content = text[4:]
		contentRange = tree.NewTextRange(shift(textRange.Start, 4), textRange.End)
	}
	return tree.NewComment(text, content, textRange, contentRange)
}

func shift(p tree.TextPointer, offset int) tree.TextPointer {
	return tree.NewTextPointer(p.Line, p.LineOffset+offset)
}

// pointer converts a CST position, whose column counts bytes, into a
// pointer whose offset counts characters.
func (b *builder) pointer(offset uint, point sitter.Point) tree.TextPointer {
	row := int(point.Row)
	if row >= len(b.lineStarts) {
		return tree.NewTextPointer(row+1, int(point.Column))
	}
	start := b.lineStarts[row]
	end := min(int(offset), len(b.content))
	if end < start {
		return tree.NewTextPointer(row+1, int(point.Column))
	}
	return tree.NewTextPointer(row+1, utf8.RuneCount(b.content[start:end]))
}

func (b *builder) rangeOf(n *sitter.Node) tree.TextRange {
	return tree.NewTextRange(
		b.pointer(n.StartByte(), n.StartPosition()),
		b.pointer(n.EndByte(), n.EndPosition()),
	)
}

func (b *builder) text(n *sitter.Node) string {
	return n.Utf8Text(b.content)
}

func (b *builder) meta(n *sitter.Node) *tree.MetaData {
	return b.provider.MetaData(b.rangeOf(n))
}

// span returns the metadata covering the given trees, which must not all
// be nil.
func (b *builder) span(trees ...tree.Tree) *tree.MetaData {
	var ranges []tree.TextRange
	for _, t := range trees {
		if !tree.IsNil(t) {
			ranges = append(ranges, t.TextRange())
		}
	}
	return b.provider.MetaData(tree.MergeRanges(ranges...))
}

// fail records the first index misuse; the conversion is then rejected.
func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) firstToken(n *sitter.Node) *tree.Token {
	if n == nil {
		return nil
	}
	return b.provider.FirstToken(b.rangeOf(n))
}

func (b *builder) lastToken(n *sitter.Node) *tree.Token {
	tokens := b.provider.TokensInside(b.rangeOf(n))
	if len(tokens) == 0 {
		return nil
	}
	return tokens[len(tokens)-1]
}

// keywordBetween returns the only keyword between the end of before and
// the start of after.
func (b *builder) keywordBetween(before, after *sitter.Node) *tree.Token {
	gap := tree.NewTextRange(b.rangeOf(before).End, b.rangeOf(after).Start)
	keyword, err := b.provider.Keyword(gap)
	if err != nil {
		b.fail(err)
		return nil
	}
	return keyword
}

// tokenWithText returns the first token spelled text between the end of
// before and the start of after.
func (b *builder) tokenWithText(before, after *sitter.Node, text string) *tree.Token {
	gap := tree.NewTextRange(b.rangeOf(before).End, b.rangeOf(after).Start)
	return b.provider.FirstTokenWithText(gap, text)
}

// convert maps n through the grammar's handlers, falling back to a
// native tree.
func (b *builder) convert(n *sitter.Node) tree.Tree {
	if n == nil {
		return nil
	}
	if h, ok := b.grammar.handlers[n.Kind()]; ok {
		return h(b, n)
	}
	return b.native(n)
}

func (b *builder) convertAll(nodes []*sitter.Node) []tree.Tree {
	converted := make([]tree.Tree, 0, len(nodes))
	for _, n := range nodes {
		if t := b.convert(n); !tree.IsNil(t) {
			converted = append(converted, t)
		}
	}
	return converted
}

// native maps n onto a NativeTree named after its kind. Operators and
// keywords among its anonymous children tell apart constructs of the same
// kind.
func (b *builder) native(n *sitter.Node) *tree.NativeTree {
	if b.grammar.isLeaf(n) {
		return tree.NewNativeTree(b.meta(n), tree.NewNativeKind(n.Kind(), b.text(n)), nil)
	}
	var differentiators []string
	for i := range n.ChildCount() {
		child := n.Child(i)
		if child.IsNamed() {
			continue
		}
		if text := b.text(child); !isPunctuation(text) {
			differentiators = append(differentiators, text)
		}
	}
	return tree.NewNativeTree(b.meta(n), tree.NewNativeKind(n.Kind(), differentiators...), b.convertAll(b.named(n)))
}

// wrap groups trees under a synthesized native node spanning them. It
// returns the single tree unchanged, and nil when there is none.
func (b *builder) wrap(kind string, trees ...tree.Tree) tree.Tree {
	var present []tree.Tree
	for _, t := range trees {
		if !tree.IsNil(t) {
			present = append(present, t)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	}
	return tree.NewNativeTree(b.span(present...), tree.NewNativeKind(kind), present)
}

// statementBlock returns a block spanning statements, or nil when there
// are none.
func (b *builder) statementBlock(statements []tree.Tree) *tree.BlockTree {
	if len(statements) == 0 {
		return nil
	}
	return tree.NewBlockTree(b.span(statements...), statements)
}

func (b *builder) identifier(n *sitter.Node) *tree.IdentifierTree {
	if n == nil {
		return nil
	}
	return tree.NewIdentifierTree(b.meta(n), b.text(n))
}

// syntheticModifier returns a modifier with no text of its own, placed at
// the start of the declaration n.
func (b *builder) syntheticModifier(n *sitter.Node, kind tree.ModifierKind) *tree.ModifierTree {
	start := b.rangeOf(n).Start
	return tree.NewModifierTree(b.provider.MetaData(tree.NewTextRange(start, start)), kind)
}

// named returns the named children of n other than comments.
func (b *builder) named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var nodes []*sitter.Node
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child == nil || b.grammar.commentKinds[child.Kind()] {
			continue
		}
		nodes = append(nodes, child)
	}
	return nodes
}

// unfielded returns the named children of n that are not bound to a
// field, such as the statements of a case clause.
func (b *builder) unfielded(n *sitter.Node) []*sitter.Node {
	var nodes []*sitter.Node
	for i := range n.ChildCount() {
		child := n.Child(i)
		if !child.IsNamed() || b.grammar.commentKinds[child.Kind()] {
			continue
		}
		if n.FieldNameForChild(uint32(i)) != "" {
			continue
		}
		nodes = append(nodes, child)
	}
	return nodes
}

// fieldChildren returns every child of n bound to field.
func fieldChildren(n *sitter.Node, field string) []*sitter.Node {
	var nodes []*sitter.Node
	for i := range n.ChildCount() {
		if n.FieldNameForChild(uint32(i)) == field {
			nodes = append(nodes, n.Child(i))
		}
	}
	return nodes
}

// childOfKind returns the first child of n, named or not, of kind.
func childOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := range n.ChildCount() {
		if child := n.Child(i); child.Kind() == kind {
			return child
		}
	}
	return nil
}

func isPunctuation(text string) bool {
	switch strings.TrimSpace(text) {
	case "", "(", ")", "{", "}", "[", "]", ",", ";", ".", ":", "\"", "'", "`":
		return true
	}
	return false
}
