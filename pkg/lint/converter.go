package lint

import (
	"context"

	"github.com/yaklabco/goslang/pkg/tree"
)

// Converter turns the source of one guest language into the common tree.
//
// The lint package defines this interface in the consumer package;
// implementations (e.g., parser/treesitter) provide the concrete parsing.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Converter interface {
	// Language returns the guest language handled, as named by langdetect
	// (e.g., "go", "javascript").
	Language() string

	// Parse converts content into a file whose tree is consistent with its
	// token, comment and annotation inventory. When the source cannot be
	// converted it returns a *tree.ParseError and no file.
	Parse(ctx context.Context, path string, content []byte) (*tree.File, error)

	// Terminate releases resources held by the converter. The converter
	// must not be used afterwards.
	Terminate()
}
