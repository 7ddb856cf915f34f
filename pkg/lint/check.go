// Package lint provides the check engine, issues, and registry for goslang.
package lint

import "github.com/yaklabco/goslang/pkg/config"

// Check defines the interface that all checks must implement.
//
// A check declares, in Initialize, the tree variants it is interested in
// and the callbacks to run on them. Callbacks are shared by every file of
// a run and may be called from several goroutines at once, so a check
// keeps per-file state in local variables of its callbacks only.
type Check interface {
	// ID returns the unique identifier for this check (e.g., "SL101").
	ID() string

	// Name returns the human-readable name of the check.
	Name() string

	// Description returns a detailed description of what the check finds.
	Description() string

	// DefaultEnabled returns whether the check is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this check.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this check.
	Tags() []string

	// Initialize reads the check's options and registers its callbacks.
	// It is called once per engine.
	Initialize(initCtx *InitContext) error
}

// BaseCheck provides a default implementation of the metadata part of the
// Check interface. Embed it in check implementations and override methods
// as needed.
// Fields of a check are set before Initialize and only read afterwards.
type BaseCheck struct {
	id   string
	name string
	desc string
	tags []string
}

// NewBaseCheck creates a BaseCheck with the given properties.
func NewBaseCheck(id, name, desc string, tags ...string) BaseCheck {
	return BaseCheck{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this check.
func (c *BaseCheck) ID() string {
	return c.id
}

// Name returns the human-readable name of the check.
func (c *BaseCheck) Name() string {
	return c.name
}

// Description returns a detailed description of what the check finds.
func (c *BaseCheck) Description() string {
	return c.desc
}

// DefaultEnabled returns whether the check is enabled by default.
// Override this method to change the default.
func (c *BaseCheck) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this check.
// Override this method to change the default.
func (c *BaseCheck) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this check.
func (c *BaseCheck) Tags() []string {
	return c.tags
}
