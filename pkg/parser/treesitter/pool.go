package treesitter

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParserPool recycles tree-sitter parsers of one grammar so that each file
// does not pay for sitter.NewParser and Parser.Close.
//
//	parser, err := pool.Get()
//	if err != nil { ... }
//	defer pool.Put(parser)
//
// Safe for use by multiple goroutines.
type ParserPool struct {
	language *sitter.Language

	mu     sync.Mutex
	idle   []*sitter.Parser
	leased int
	closed bool
}

// NewParserPool returns a pool for language. The language must stay valid
// for the lifetime of the pool.
func NewParserPool(language *sitter.Language) *ParserPool {
	return &ParserPool{language: language}
}

// Get returns an idle parser, or a new one configured for the pool's
// language.
func (p *ParserPool) Get() (*sitter.Parser, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrTerminated
	}
	var parser *sitter.Parser
	if n := len(p.idle); n > 0 {
		parser = p.idle[n-1]
		p.idle = p.idle[:n-1]
	}
	p.leased++
	p.mu.Unlock()

	if parser == nil {
		parser = sitter.NewParser()
	}
	if err := parser.SetLanguage(p.language); err != nil {
		parser.Close()
		p.release()
		return nil, fmt.Errorf("set language: %w", err)
	}
	return parser, nil
}

// Put hands parser back. It is reset so that no previous tree is retained,
// or closed when the pool has been closed meanwhile.
func (p *ParserPool) Put(parser *sitter.Parser) {
	if parser == nil {
		return
	}
	parser.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.leased--
	if p.closed {
		parser.Close()
		return
	}
	p.idle = append(p.idle, parser)
}

func (p *ParserPool) release() {
	p.mu.Lock()
	p.leased--
	p.mu.Unlock()
}

// Stats returns the number of parsers currently leased and idle.
func (p *ParserPool) Stats() (leased, idle int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.leased, len(p.idle)
}

// Close releases the idle parsers. Parsers still leased are closed when
// they are put back. Get fails after Close.
func (p *ParserPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, parser := range p.idle {
		parser.Close()
	}
	p.idle = nil
}
