package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports misuse of the metadata index, such as asking
// for the keyword of a range that holds none or several. It signals a bug
// in a converter or a check, not a recoverable condition.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseError is returned by converters when the guest-language source
// cannot be turned into a tree.
type ParseError struct {
	// Message describes the failure.
	Message string

	// Pointer is the position of the failure, when known.
	Pointer *TextPointer
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pointer == nil {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pointer)
}

// NewParseError returns a ParseError located at pointer (which may be nil).
func NewParseError(message string, pointer *TextPointer) *ParseError {
	return &ParseError{Message: message, Pointer: pointer}
}
