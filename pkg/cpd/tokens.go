// Package cpd implements copy-paste detection over the token streams of
// converted files.
package cpd

import (
	"github.com/yaklabco/goslang/pkg/tree"
)

// LiteralImage replaces the text of every string literal, so that blocks
// differing only in their strings still match.
const LiteralImage = "LITERAL"

// Token is one element of a copy-paste detection stream.
type Token struct {
	Image string
	Range tree.TextRange
}

// Tokens returns the stream of file: its tokens from the first one after
// the package and import declarations, string literals normalised to
// LiteralImage. A file without a tree has no tokens.
func Tokens(file *tree.File) []Token {
	if file == nil || file.Root == nil || file.Root.FirstCpdToken == nil {
		return nil
	}
	first := file.Root.FirstCpdToken.Range.Start

	all := file.Provider.AllTokens()
	stream := make([]Token, 0, len(all))
	for _, token := range all {
		if token.Range.Start.Before(first) {
			continue
		}
		image := token.Text
		if token.Kind == tree.TokenStringLiteral {
			image = LiteralImage
		}
		stream = append(stream, Token{Image: image, Range: token.Range})
	}
	return stream
}
