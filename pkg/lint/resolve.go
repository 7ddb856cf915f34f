package lint

import (
	"slices"

	"github.com/yaklabco/goslang/pkg/config"
)

// ResolvedCheck pairs a Check with its resolved configuration.
type ResolvedCheck struct {
	// Check is the underlying check implementation.
	Check Check

	// Enabled indicates whether the check should be run.
	Enabled bool

	// Severity is the resolved severity for issues from this check.
	Severity config.Severity

	// Config is the check-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveChecks determines which checks to run based on registry and config.
// Returns only enabled checks with their resolved configuration.
func ResolveChecks(registry *Registry, cfg *config.Config) []ResolvedCheck {
	var resolved []ResolvedCheck

	for _, check := range registry.Checks() {
		rc := resolveCheck(check, cfg)
		if rc.Enabled {
			resolved = append(resolved, rc)
		}
	}

	return resolved
}

// resolveCheck resolves the configuration for a single check.
func resolveCheck(check Check, cfg *config.Config) ResolvedCheck {
	rc := ResolvedCheck{
		Check:    check,
		Enabled:  check.DefaultEnabled(),
		Severity: check.DefaultSeverity(),
	}

	if cfg == nil {
		return rc
	}

	if cfg.SeverityDefault != "" {
		rc.Severity = config.Severity(cfg.SeverityDefault)
	}

	// Check-specific config.
	if ruleCfg, ok := cfg.Rules[check.ID()]; ok {
		rc.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rc.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rc.Severity = config.Severity(*ruleCfg.Severity)
		}
	}

	// Explicit enable/disable from the CLI has the last word.
	if slices.Contains(cfg.EnableRules, check.ID()) {
		rc.Enabled = true
	}
	if slices.Contains(cfg.DisableRules, check.ID()) {
		rc.Enabled = false
	}

	return rc
}
