package checks

import (
	"regexp"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

// markerCheck reports comments holding a task marker such as TODO.
type markerCheck struct {
	lint.BaseCheck
	pattern *regexp.Regexp
	message string
}

// Initialize registers the callbacks.
func (c *markerCheck) Initialize(initCtx *lint.InitContext) error {
	lint.Register(initCtx, func(ctx *lint.CheckContext, root *tree.TopLevelTree) {
		for _, comment := range root.AllComments {
			match := c.pattern.FindStringSubmatchIndex(comment.Text)
			if match == nil {
				continue
			}
			// Group 2 is the marker itself.
			start := pointerAfter(comment.Range.Start, comment.Text[:match[4]])
			end := pointerAfter(start, comment.Text[match[4]:match[5]])
			ctx.ReportIssue(tree.NewTextRange(start, end), c.message)
		}
	})
	return nil
}

// TodoCommentCheck reports TODO comments.
type TodoCommentCheck struct {
	markerCheck
}

// NewTodoCommentCheck creates a new todo-comment check.
func NewTodoCommentCheck() *TodoCommentCheck {
	return &TodoCommentCheck{markerCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL117",
			"todo-comment",
			`Track uses of "TODO" tags`,
			"comments",
		),
		pattern: regexp.MustCompile(`(?i)(^|[^\pL])(todo)`),
		message: `Complete the task associated to this "TODO" comment.`,
	}}
}

// DefaultSeverity returns info.
func (c *TodoCommentCheck) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// FixmeCommentCheck reports FIXME comments.
type FixmeCommentCheck struct {
	markerCheck
}

// NewFixmeCommentCheck creates a new fixme-comment check.
func NewFixmeCommentCheck() *FixmeCommentCheck {
	return &FixmeCommentCheck{markerCheck{
		BaseCheck: lint.NewBaseCheck(
			"SL118",
			"fixme-comment",
			`Track uses of "FIXME" tags`,
			"comments",
		),
		pattern: regexp.MustCompile(`(?i)(^|[^\pL])(fixme)`),
		message: `Take the required action to fix the issue indicated by this "FIXME" comment.`,
	}}
}
