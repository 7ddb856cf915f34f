// Package treesitter converts guest-language sources into the common tree
// using tree-sitter grammars. Each Converter owns a pool of parsers for its
// grammar and is safe for concurrent use.
package treesitter

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/yaklabco/goslang/pkg/tree"
)

// ErrTerminated is returned by Parse after Terminate.
var ErrTerminated = errors.New("converter terminated")

// handler maps one CST node kind onto the common tree.
type handler func(b *builder, n *sitter.Node) tree.Tree

// grammar describes how one guest language maps onto the common tree.
type grammar struct {
	name     string
	language *sitter.Language

	// keywords are the reserved words, tokenized as KEYWORD.
	keywords map[string]bool

	// contextualKeywords are tokenized as OTHER and promoted to KEYWORD
	// where the CST uses them as anonymous syntax.
	contextualKeywords map[string]bool

	// identifierKinds never produce keyword tokens, whatever their text.
	identifierKinds map[string]bool

	// stringKinds are tokenized as a single STRING_LITERAL token.
	stringKinds map[string]bool

	// templateKinds yield a STRING_LITERAL token when atomic.
	templateKinds map[string]bool

	// commentKinds become comments rather than tokens.
	commentKinds map[string]bool

	// atomic reports whether a node with children still yields a single
	// token, such as a regular expression.
	atomic func(n *sitter.Node) bool

	// annotation turns a decorator-like node into an annotation, or
	// returns nil.
	annotation func(b *builder, n *sitter.Node) *tree.Annotation

	// topLevel maps the CST root.
	topLevel func(b *builder, root *sitter.Node) *tree.TopLevelTree

	handlers map[string]handler
}

func (g *grammar) isLeaf(n *sitter.Node) bool {
	if n.ChildCount() == 0 || g.stringKinds[n.Kind()] {
		return true
	}
	return g.atomic != nil && g.atomic(n)
}

// Converter parses one guest language into a tree.File.
type Converter struct {
	grammar    *grammar
	pool       *ParserPool
	terminated atomic.Bool
}

func newConverter(g *grammar) *Converter {
	return &Converter{grammar: g, pool: NewParserPool(g.language)}
}

// Language returns the name of the guest language.
func (c *Converter) Language() string {
	return c.grammar.name
}

// Parse converts content. A source with syntax errors yields a
// *tree.ParseError located at the first erroneous node.
func (c *Converter) Parse(ctx context.Context, path string, content []byte) (file *tree.File, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.terminated.Load() {
		return nil, ErrTerminated
	}

	parser, err := c.pool.Get()
	if err != nil {
		return nil, err
	}
	defer c.pool.Put(parser)

	defer func() {
		if r := recover(); r != nil {
			file = nil
			err = fmt.Errorf("%s converter panicked on %s: %v", c.grammar.name, path, r)
		}
	}()

	length := len(content)
	cst := parser.ParseWithOptions(func(offset int, _ sitter.Point) []byte {
		if offset < length {
			return content[offset:]
		}
		return nil
	}, nil, &sitter.ParseOptions{
		ProgressCallback: func(sitter.ParseState) bool { return ctx.Err() != nil },
	})
	if cst == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, tree.NewParseError("parser produced no tree", nil)
	}
	defer cst.Close()

	b := newBuilder(c.grammar, content)
	root := cst.RootNode()
	if root.HasError() {
		return nil, b.syntaxError(root)
	}
	return b.build(path, root)
}

// Terminate releases the pooled parsers. Parse fails afterwards.
func (c *Converter) Terminate() {
	if c.terminated.Swap(true) {
		return
	}
	c.pool.Close()
}
