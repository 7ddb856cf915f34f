package tree

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// MetaDataProvider indexes the tokens, comments and annotations of one file
// and answers range queries over them. All three lists are kept sorted by
// range start and are searched with binary search.
//
// A provider belongs to the analysis of a single file and is not safe for
// concurrent use.
type MetaDataProvider struct {
	comments    []*Comment
	tokens      []*Token
	annotations []*Annotation

	// cache holds derived per-range results. It is dropped whenever the
	// token list changes.
	cache map[TextRange]*rangeCache
}

type rangeCache struct {
	comments    []*Comment
	tokens      []*Token
	annotations []*Annotation
	lines       []int

	hasComments    bool
	hasTokens      bool
	hasAnnotations bool
	hasLines       bool
}

// NewMetaDataProvider builds the index. The input slices are copied.
func NewMetaDataProvider(comments []*Comment, tokens []*Token, annotations []*Annotation) *MetaDataProvider {
	provider := &MetaDataProvider{
		comments:    sortedByStart(comments),
		tokens:      sortedByStart(tokens),
		annotations: sortedByStart(annotations),
		cache:       make(map[TextRange]*rangeCache),
	}
	return provider
}

func sortedByStart[T HasTextRange](elements []T) []T {
	sorted := slices.Clone(elements)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return a.TextRange().Start.Compare(b.TextRange().Start)
	})
	return sorted
}

// MetaData returns the metadata handle for textRange.
func (p *MetaDataProvider) MetaData(textRange TextRange) *MetaData {
	return &MetaData{textRange: textRange, provider: p}
}

// AllTokens returns every token of the file in source order.
func (p *MetaDataProvider) AllTokens() []*Token {
	return slices.Clone(p.tokens)
}

// AllComments returns every comment of the file in source order.
func (p *MetaDataProvider) AllComments() []*Comment {
	return slices.Clone(p.comments)
}

// AllAnnotations returns every annotation of the file in source order.
func (p *MetaDataProvider) AllAnnotations() []*Annotation {
	return slices.Clone(p.annotations)
}

// elementsInRange returns the elements lying fully inside textRange.
func elementsInRange[T HasTextRange](elements []T, textRange TextRange) []T {
	first := firstStartingAtOrAfter(elements, textRange.Start)
	end := first
	for end < len(elements) && elements[end].TextRange().IsInside(textRange) {
		end++
	}
	if end == first {
		return nil
	}
	return slices.Clone(elements[first:end])
}

// firstStartingAtOrAfter returns the index of the first element whose start
// is not before pointer, or len(elements).
func firstStartingAtOrAfter[T HasTextRange](elements []T, pointer TextPointer) int {
	return sort.Search(len(elements), func(i int) bool {
		return !elements[i].TextRange().Start.Before(pointer)
	})
}

// CommentsInside returns the comments lying fully inside textRange.
func (p *MetaDataProvider) CommentsInside(textRange TextRange) []*Comment {
	return p.entry(textRange).commentsFor(p, textRange)
}

// TokensInside returns the tokens lying fully inside textRange.
func (p *MetaDataProvider) TokensInside(textRange TextRange) []*Token {
	return p.entry(textRange).tokensFor(p, textRange)
}

// IndexOfFirstToken returns the index of the first token fully inside
// textRange. When no token starting at or after the range start is inside
// it, the token straddling the range start is returned instead. It returns
// -1 when neither exists, or when p is nil.
func (p *MetaDataProvider) IndexOfFirstToken(textRange TextRange) int {
	if p == nil {
		return -1
	}
	index := firstStartingAtOrAfter(p.tokens, textRange.Start)
	if index < len(p.tokens) && p.tokens[index].Range.IsInside(textRange) {
		return index
	}
	if index > 0 {
		previous := p.tokens[index-1].Range
		if previous.End.After(textRange.Start) && previous.Start.Before(textRange.End) {
			return index - 1
		}
	}
	return -1
}

// FirstToken returns the first token of textRange, or nil.
func (p *MetaDataProvider) FirstToken(textRange TextRange) *Token {
	index := p.IndexOfFirstToken(textRange)
	if index < 0 {
		return nil
	}
	return p.tokens[index]
}

// FirstTokenWhere returns the first token inside textRange accepted by
// predicate, or nil.
func (p *MetaDataProvider) FirstTokenWhere(textRange TextRange, predicate func(*Token) bool) *Token {
	for _, token := range p.TokensInside(textRange) {
		if predicate(token) {
			return token
		}
	}
	return nil
}

// FirstTokenWithText returns the first token inside textRange whose text is
// text, or nil.
func (p *MetaDataProvider) FirstTokenWithText(textRange TextRange, text string) *Token {
	return p.FirstTokenWhere(textRange, func(token *Token) bool {
		return token.Text == text
	})
}

// PreviousToken returns the token immediately preceding the first token of
// textRange, or nil.
func (p *MetaDataProvider) PreviousToken(textRange TextRange) *Token {
	index := p.IndexOfFirstToken(textRange)
	if index < 1 {
		return nil
	}
	return p.tokens[index-1]
}

// PreviousTokenWithText returns the token immediately preceding textRange
// when its text is text, or nil.
func (p *MetaDataProvider) PreviousTokenWithText(textRange TextRange, text string) *Token {
	token := p.PreviousToken(textRange)
	if token == nil || token.Text != text {
		return nil
	}
	return token
}

// Keyword returns the only keyword token inside textRange. Finding no
// keyword, or more than one, is an ErrInvalidArgument.
func (p *MetaDataProvider) Keyword(textRange TextRange) (*Token, error) {
	var keyword *Token
	for _, token := range p.TokensInside(textRange) {
		if token.Kind != TokenKeyword {
			continue
		}
		if keyword != nil {
			return nil, fmt.Errorf("%w: more than one keyword in %s (%q, %q)",
				ErrInvalidArgument, textRange, keyword.Text, token.Text)
		}
		keyword = token
	}
	if keyword == nil {
		return nil, fmt.Errorf("%w: no keyword in %s", ErrInvalidArgument, textRange)
	}
	return keyword, nil
}

// UpdateTokenType replaces token in the index by a copy of kind kind and
// returns the copy. The token must be the indexed instance at its range;
// anything else is an ErrInvalidArgument. Cached range results are dropped.
func (p *MetaDataProvider) UpdateTokenType(token *Token, kind TokenKind) (*Token, error) {
	if token == nil {
		return nil, fmt.Errorf("%w: nil token", ErrInvalidArgument)
	}
	index := firstStartingAtOrAfter(p.tokens, token.Range.Start)
	if index >= len(p.tokens) || p.tokens[index] != token {
		return nil, fmt.Errorf("%w: token %q is not indexed at %s",
			ErrInvalidArgument, token.Text, token.Range)
	}
	replacement := &Token{Range: token.Range, Text: token.Text, Kind: kind}
	p.tokens[index] = replacement
	clear(p.cache)
	return replacement, nil
}

// AnnotationsStartingAt returns the chain of annotations beginning exactly
// at the start of textRange. After each annotation the match point moves to
// the token that follows it, so stacked annotations are collected together.
func (p *MetaDataProvider) AnnotationsStartingAt(textRange TextRange) []*Annotation {
	return p.entry(textRange).annotationsFor(p, textRange)
}

func (p *MetaDataProvider) annotationChain(textRange TextRange) []*Annotation {
	var chain []*Annotation
	start := textRange.Start
	index := firstStartingAtOrAfter(p.annotations, start)
	for index < len(p.annotations) {
		annotation := p.annotations[index]
		if annotation.Range.Start != start || !annotation.Range.IsInside(textRange) {
			break
		}
		chain = append(chain, annotation)

		next := firstStartingAtOrAfter(p.tokens, annotation.Range.End)
		if next >= len(p.tokens) {
			break
		}
		start = p.tokens[next].Range.Start
		index++
	}
	return chain
}

// linesOfCode returns the sorted distinct lines covered by the tokens of
// textRange.
func (p *MetaDataProvider) linesOfCode(textRange TextRange) []int {
	seen := make(map[int]struct{})
	for _, token := range p.TokensInside(textRange) {
		for line := token.Range.Start.Line; line <= token.Range.End.Line; line++ {
			seen[line] = struct{}{}
		}
	}
	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	slices.SortFunc(lines, cmp.Compare[int])
	return lines
}

func (p *MetaDataProvider) entry(textRange TextRange) *rangeCache {
	cached, ok := p.cache[textRange]
	if !ok {
		cached = &rangeCache{}
		p.cache[textRange] = cached
	}
	return cached
}

func (c *rangeCache) commentsFor(p *MetaDataProvider, textRange TextRange) []*Comment {
	if !c.hasComments {
		c.comments = elementsInRange(p.comments, textRange)
		c.hasComments = true
	}
	return c.comments
}

func (c *rangeCache) tokensFor(p *MetaDataProvider, textRange TextRange) []*Token {
	if !c.hasTokens {
		c.tokens = elementsInRange(p.tokens, textRange)
		c.hasTokens = true
	}
	return c.tokens
}

func (c *rangeCache) annotationsFor(p *MetaDataProvider, textRange TextRange) []*Annotation {
	if !c.hasAnnotations {
		c.annotations = p.annotationChain(textRange)
		c.hasAnnotations = true
	}
	return c.annotations
}

func (c *rangeCache) linesFor(p *MetaDataProvider, textRange TextRange) []int {
	if !c.hasLines {
		c.lines = p.linesOfCode(textRange)
		c.hasLines = true
	}
	return c.lines
}
