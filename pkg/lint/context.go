package lint

import (
	"context"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// Callback is the untyped form of a check callback.
type Callback func(ctx *CheckContext, t tree.Tree)

type registration struct {
	kind     tree.Kind
	callback Callback
}

// InitContext is handed to Check.Initialize. It exposes the check's
// options and collects the callbacks the check registers.
type InitContext struct {
	// RuleConfig is the check-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	registrations []registration
	parseErrors   []func(ctx *CheckContext, err *tree.ParseError)
}

// NewInitContext creates an InitContext over the given check configuration.
func NewInitContext(ruleCfg *config.RuleConfig) *InitContext {
	return &InitContext{RuleConfig: ruleCfg}
}

// Register adds callback for every node of variant T.
func Register[T tree.Tree](initCtx *InitContext, callback func(ctx *CheckContext, t T)) {
	initCtx.RegisterKind(visit.KindOf[T](), func(ctx *CheckContext, t tree.Tree) {
		if typed, ok := t.(T); ok {
			callback(ctx, typed)
		}
	})
}

// RegisterKind adds callback for every node of kind.
func (ic *InitContext) RegisterKind(kind tree.Kind, callback Callback) {
	ic.registrations = append(ic.registrations, registration{kind: kind, callback: callback})
}

// OnParseError adds callback for files the converter could not parse.
func (ic *InitContext) OnParseError(callback func(ctx *CheckContext, err *tree.ParseError)) {
	ic.parseErrors = append(ic.parseErrors, callback)
}

// Option returns a check-specific option value, or the default if not set.
func (ic *InitContext) Option(key string, defaultValue any) any {
	if ic.RuleConfig == nil || ic.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := ic.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a check-specific integer option, or the default.
func (ic *InitContext) OptionInt(key string, defaultValue int) int {
	v := ic.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a check-specific string option, or the default.
func (ic *InitContext) OptionString(key string, defaultValue string) string {
	v := ic.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a check-specific boolean option, or the default.
func (ic *InitContext) OptionBool(key string, defaultValue bool) bool {
	v := ic.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a check-specific string slice option, or the default.
func (ic *InitContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := ic.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []any from YAML/JSON/TOML parsing
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// CheckContext is handed to check callbacks. It exposes the node's
// ancestors, the file being analyzed and the issue-reporting API.
//
// CheckContext stores the context.Context as a field; it is a short-lived
// parameter object created per check per file.
type CheckContext struct {
	// Ctx is the context of the analysis.
	Ctx context.Context

	file   *tree.File
	path   string
	walk   *visit.Context
	check  *activeCheck
	run    *fileRun
	failed error
}

// Ancestors returns the enclosing nodes of the visited node, innermost
// first.
func (c *CheckContext) Ancestors() []tree.Tree {
	if c.walk == nil {
		return nil
	}
	return c.walk.Ancestors()
}

// Parent returns the innermost enclosing node, or nil at the root.
func (c *CheckContext) Parent() tree.Tree {
	if c.walk == nil {
		return nil
	}
	return c.walk.Parent()
}

// File returns the converted file, or nil when the file failed to parse.
func (c *CheckContext) File() *tree.File {
	return c.file
}

// Filename returns the path of the file being analyzed.
func (c *CheckContext) Filename() string {
	return c.path
}

// FileContent returns the raw text of the file being analyzed.
func (c *CheckContext) FileContent() string {
	if c.file == nil {
		return ""
	}
	return c.file.Content
}

// ReportIssue records an issue located at the range of at.
func (c *CheckContext) ReportIssue(at tree.HasTextRange, message string, secondaries ...SecondaryLocation) {
	c.Report(NewIssue(c.check.id(), at, message).WithSecondary(secondaries...))
}

// ReportIssueWithGap records an issue with a remediation cost.
func (c *CheckContext) ReportIssueWithGap(at tree.HasTextRange, message string, gap float64, secondaries ...SecondaryLocation) {
	c.Report(NewIssue(c.check.id(), at, message).WithSecondary(secondaries...).WithGap(gap))
}

// ReportFileIssue records an issue about the whole file.
func (c *CheckContext) ReportFileIssue(message string) {
	c.Report(NewIssue(c.check.id(), nil, message))
}

// Report records the issue under construction, filling in the check,
// the severity and the path.
func (c *CheckContext) Report(builder *IssueBuilder) {
	issue := builder.
		WithPath(c.path).
		WithCheckName(c.check.name()).
		WithSeverity(c.check.resolved.Severity).
		Build()
	issue.CheckID = c.check.id()
	c.run.issues = append(c.run.issues, issue)
}

// Fail stops the check for the rest of the file and records err as an
// analysis failure. Use it for errors such as index misuse that indicate a
// bug rather than a finding.
func (c *CheckContext) Fail(err error) {
	if err != nil && c.failed == nil {
		c.failed = err
	}
}
