// Package visit walks trees in document order while keeping the stack of
// enclosing nodes, and dispatches each node to the handlers registered for
// its kind.
package visit

import (
	"slices"

	"github.com/yaklabco/goslang/pkg/tree"
)

// Context is the traversal state handed to handlers. It is owned by one
// traversal and must not be shared across goroutines.
type Context struct {
	// stack holds the enclosing nodes, root first.
	stack []tree.Tree
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Ancestors returns the enclosing nodes of the node being visited,
// innermost first. The node itself is not included.
func (c *Context) Ancestors() []tree.Tree {
	ancestors := slices.Clone(c.stack)
	slices.Reverse(ancestors)
	return ancestors
}

// Parent returns the innermost enclosing node, or nil at the root.
func (c *Context) Parent() tree.Tree {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Depth returns the number of enclosing nodes.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Enter pushes t as the innermost enclosing node.
func (c *Context) Enter(t tree.Tree) {
	c.stack = append(c.stack, t)
}

// Leave pops the innermost enclosing node.
func (c *Context) Leave() {
	if len(c.stack) > 0 {
		c.stack[len(c.stack)-1] = nil
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Handler is called for each visited node of a registered kind.
type Handler func(ctx *Context, t tree.Tree)

// Visitor dispatches nodes to handlers by kind. Handlers of one kind run
// in registration order, before the node's children are visited.
type Visitor struct {
	handlers map[tree.Kind][]Handler
}

// NewVisitor returns a visitor without handlers.
func NewVisitor() *Visitor {
	return &Visitor{handlers: make(map[tree.Kind][]Handler)}
}

// Register adds handler for nodes of kind.
func (v *Visitor) Register(kind tree.Kind, handler Handler) {
	v.handlers[kind] = append(v.handlers[kind], handler)
}

// On registers a typed handler for the variant T.
func On[T tree.Tree](v *Visitor, handler func(ctx *Context, t T)) {
	v.Register(KindOf[T](), func(ctx *Context, t tree.Tree) {
		if typed, ok := t.(T); ok {
			handler(ctx, typed)
		}
	})
}

// KindOf returns the kind of the variant T.
func KindOf[T tree.Tree]() tree.Kind {
	var zero T
	return zero.Kind()
}

// Scan visits root and its descendants in pre-order using ctx.
func (v *Visitor) Scan(ctx *Context, root tree.Tree) {
	if tree.IsNil(root) {
		return
	}
	for _, handler := range v.handlers[root.Kind()] {
		handler(ctx, root)
	}
	ctx.Enter(root)
	for _, child := range root.Children() {
		v.Scan(ctx, child)
	}
	ctx.Leave()
}
