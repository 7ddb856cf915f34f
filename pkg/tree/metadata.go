package tree

// MetaData describes the source text covered by one tree: its range and,
// derived on demand from the file's MetaDataProvider, the tokens, comments,
// annotations and lines of code inside that range. Derived results are
// cached by the provider per range.
type MetaData struct {
	textRange TextRange
	provider  *MetaDataProvider
}

// TextRange returns the covered range. A nil MetaData has the zero range.
func (m *MetaData) TextRange() TextRange {
	if m == nil {
		return TextRange{}
	}
	return m.textRange
}

// Provider returns the index this metadata was derived from.
func (m *MetaData) Provider() *MetaDataProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Tokens returns the tokens inside the range, in source order.
func (m *MetaData) Tokens() []*Token {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.entry(m.textRange).tokensFor(m.provider, m.textRange)
}

// Comments returns the comments inside the range, in source order.
func (m *MetaData) Comments() []*Comment {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.entry(m.textRange).commentsFor(m.provider, m.textRange)
}

// Annotations returns the annotations chained from the start of the range.
func (m *MetaData) Annotations() []*Annotation {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.entry(m.textRange).annotationsFor(m.provider, m.textRange)
}

// LinesOfCode returns the distinct lines covered by the range's tokens,
// sorted ascending.
func (m *MetaData) LinesOfCode() []int {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.entry(m.textRange).linesFor(m.provider, m.textRange)
}
