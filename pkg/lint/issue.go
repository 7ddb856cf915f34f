package lint

import (
	"fmt"
	"reflect"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/tree"
)

// SecondaryLocation is an auxiliary range explaining an issue, such as the
// original of a duplicate.
type SecondaryLocation struct {
	Range   tree.TextRange
	Message string
}

// NewSecondaryLocation returns a secondary location at the range of at.
func NewSecondaryLocation(at tree.HasTextRange, message string) SecondaryLocation {
	return SecondaryLocation{Range: at.TextRange(), Message: message}
}

// Issue represents a single finding of a check in a file.
type Issue struct {
	// CheckID is the identifier of the check that produced this issue.
	CheckID string

	// CheckName is the human-readable name of the check.
	CheckName string

	// Severity indicates the importance of the issue.
	Severity config.Severity

	// Path is the path to the file containing the issue.
	Path string

	// Range is the primary location. Nil for file-level issues.
	Range *tree.TextRange

	// Message is the human-readable description of the issue.
	Message string

	// Secondary holds the auxiliary locations, in report order.
	Secondary []SecondaryLocation

	// Gap is the remediation cost, when the check computes one.
	Gap *float64
}

// Line returns the 1-based line of the primary location, or 0 for a
// file-level issue.
func (i *Issue) Line() int {
	if i.Range == nil {
		return 0
	}
	return i.Range.Start.Line
}

// Column returns the 1-based column of the primary location, or 0 for a
// file-level issue.
func (i *Issue) Column() int {
	if i.Range == nil {
		return 0
	}
	return i.Range.Start.LineOffset + 1
}

// Failure is an analysis error attached to a file: a parse failure, a
// malformed tree, or a check that failed on one of the file's nodes.
type Failure struct {
	// Path is the file the failure belongs to.
	Path string

	// CheckID is the failing check, empty for parse and validation failures.
	CheckID string

	// Message describes the failure.
	Message string

	// Pointer is the position of the failure, when known.
	Pointer *tree.TextPointer

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	location := f.Path
	if f.Pointer != nil {
		location = fmt.Sprintf("%s:%d:%d", f.Path, f.Pointer.Line, f.Pointer.LineOffset+1)
	}
	if f.CheckID != "" {
		return fmt.Sprintf("%s: check %s: %s", location, f.CheckID, f.Message)
	}
	return fmt.Sprintf("%s: %s", location, f.Message)
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue located at the range of at. A nil at
// builds a file-level issue.
func NewIssue(checkID string, at tree.HasTextRange, message string) *IssueBuilder {
	builder := &IssueBuilder{issue: Issue{CheckID: checkID, Message: message}}
	if !isNilLocation(at) {
		textRange := at.TextRange()
		builder.issue.Range = &textRange
	}
	return builder
}

// WithPath sets the file path.
func (b *IssueBuilder) WithPath(path string) *IssueBuilder {
	b.issue.Path = path
	return b
}

// WithCheckName sets the check name.
func (b *IssueBuilder) WithCheckName(name string) *IssueBuilder {
	b.issue.CheckName = name
	return b
}

// WithSeverity sets the severity.
func (b *IssueBuilder) WithSeverity(s config.Severity) *IssueBuilder {
	b.issue.Severity = s
	return b
}

// WithSecondary appends secondary locations.
func (b *IssueBuilder) WithSecondary(locations ...SecondaryLocation) *IssueBuilder {
	b.issue.Secondary = append(b.issue.Secondary, locations...)
	return b
}

// WithGap sets the remediation cost.
func (b *IssueBuilder) WithGap(gap float64) *IssueBuilder {
	b.issue.Gap = &gap
	return b
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}

func isNilLocation(at tree.HasTextRange) bool {
	if at == nil {
		return true
	}
	value := reflect.ValueOf(at)
	return value.Kind() == reflect.Pointer && value.IsNil()
}
