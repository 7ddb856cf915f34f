package tree

// TokenKind classifies a token.
type TokenKind uint8

const (
	// TokenOther covers identifiers, operators, punctuation and literals
	// other than strings.
	TokenOther TokenKind = iota

	// TokenKeyword is a reserved or contextual keyword of the guest language.
	TokenKeyword

	// TokenStringLiteral is a complete string literal, delimiters included.
	TokenStringLiteral
)

// String returns the lower-case name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenStringLiteral:
		return "string_literal"
	default:
		return "other"
	}
}

// Token is one lexical item of a file. Tokens are created once per file
// by a converter and never modified; the metadata index may replace a
// token by a reclassified copy (see MetaDataProvider.UpdateTokenType).
type Token struct {
	Range TextRange
	Text  string
	Kind  TokenKind
}

// NewToken returns a token.
func NewToken(textRange TextRange, text string, kind TokenKind) *Token {
	return &Token{Range: textRange, Text: text, Kind: kind}
}

// TextRange returns the token's range.
func (t *Token) TextRange() TextRange {
	return t.Range
}

// Comment is a source comment. Text includes the delimiters, Content
// does not.
type Comment struct {
	Text         string
	Content      string
	Range        TextRange
	ContentRange TextRange
}

// NewComment returns a comment.
func NewComment(text, content string, textRange, contentRange TextRange) *Comment {
	return &Comment{
		Text:         text,
		Content:      content,
		Range:        textRange,
		ContentRange: contentRange,
	}
}

// TextRange returns the comment's full range.
func (c *Comment) TextRange() TextRange {
	return c.Range
}

// Annotation is a decorator or annotation attached to a declaration.
type Annotation struct {
	ShortName string
	Arguments []string
	Range     TextRange
}

// NewAnnotation returns an annotation.
func NewAnnotation(shortName string, arguments []string, textRange TextRange) *Annotation {
	return &Annotation{ShortName: shortName, Arguments: arguments, Range: textRange}
}

// TextRange returns the annotation's range.
func (a *Annotation) TextRange() TextRange {
	return a.Range
}
