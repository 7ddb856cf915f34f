package tree

import "fmt"

// TextPointer is a position in source text.
// Line is 1-based, LineOffset is the 0-based byte offset within the line.
type TextPointer struct {
	Line       int
	LineOffset int
}

// NewTextPointer returns the pointer at line and offset.
func NewTextPointer(line, lineOffset int) TextPointer {
	return TextPointer{Line: line, LineOffset: lineOffset}
}

// Compare orders pointers by line, then by offset.
// It returns -1, 0 or +1.
func (p TextPointer) Compare(other TextPointer) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.LineOffset < other.LineOffset:
		return -1
	case p.LineOffset > other.LineOffset:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly before other.
func (p TextPointer) Before(other TextPointer) bool {
	return p.Compare(other) < 0
}

// After reports whether p is strictly after other.
func (p TextPointer) After(other TextPointer) bool {
	return p.Compare(other) > 0
}

// String returns "line:offset".
func (p TextPointer) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.LineOffset)
}

// TextRange is an interval of source text. Start is never after End.
type TextRange struct {
	Start TextPointer
	End   TextPointer
}

// HasTextRange is implemented by everything that occupies source text:
// trees, tokens, comments, annotations and ranges themselves.
type HasTextRange interface {
	TextRange() TextRange
}

// Range builds a TextRange from its four coordinates.
func Range(startLine, startOffset, endLine, endOffset int) TextRange {
	return TextRange{
		Start: TextPointer{Line: startLine, LineOffset: startOffset},
		End:   TextPointer{Line: endLine, LineOffset: endOffset},
	}
}

// NewTextRange builds a TextRange from two pointers.
func NewTextRange(start, end TextPointer) TextRange {
	return TextRange{Start: start, End: end}
}

// TextRange returns r, so a bare range can be used wherever a located
// element is expected.
func (r TextRange) TextRange() TextRange {
	return r
}

// IsInside reports whether r lies fully inside other, bounds included.
func (r TextRange) IsInside(other TextRange) bool {
	return r.Start.Compare(other.Start) >= 0 && r.End.Compare(other.End) <= 0
}

// Overlaps reports whether r and other share at least one character.
// Ranges that only touch at a boundary do not overlap.
func (r TextRange) Overlaps(other TextRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// IsEmpty reports whether the range is zero-width.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// String returns "[start - end]".
func (r TextRange) String() string {
	return fmt.Sprintf("[%s - %s]", r.Start, r.End)
}

// MergeRanges returns the smallest range covering all the given ranges.
// It returns the zero range when called without arguments.
func MergeRanges(ranges ...TextRange) TextRange {
	if len(ranges) == 0 {
		return TextRange{}
	}
	merged := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start.Before(merged.Start) {
			merged.Start = r.Start
		}
		if r.End.After(merged.End) {
			merged.End = r.End
		}
	}
	return merged
}
