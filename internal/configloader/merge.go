package configloader

import (
	"cmp"
	"maps"
	"slices"

	"github.com/yaklabco/goslang/pkg/config"
)

// merge layers override on top of base and returns a new Config; neither
// input is modified. Unset scalars and nil slices in override leave base
// alone, non-nil slices replace it, and rule entries merge key by key.
// CPD and strict mode can be switched on by a later layer, never off.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := base.Clone()
	out.SeverityDefault = cmp.Or(override.SeverityDefault, out.SeverityDefault)
	out.Format = cmp.Or(override.Format, out.Format)
	out.RuleFormat = cmp.Or(override.RuleFormat, out.RuleFormat)
	out.Validation = cmp.Or(override.Validation, out.Validation)
	out.Jobs = cmp.Or(override.Jobs, out.Jobs)
	out.MaxFileSize = cmp.Or(override.MaxFileSize, out.MaxFileSize)
	out.CPD.MinTokens = cmp.Or(override.CPD.MinTokens, out.CPD.MinTokens)
	out.CPD.Enabled = out.CPD.Enabled || override.CPD.Enabled
	out.Strict = out.Strict || override.Strict

	replaceIfSet(&out.Ignore, override.Ignore)
	replaceIfSet(&out.Languages, override.Languages)
	replaceIfSet(&out.EnableRules, override.EnableRules)
	replaceIfSet(&out.DisableRules, override.DisableRules)

	if len(override.Rules) > 0 && out.Rules == nil {
		out.Rules = make(map[string]config.RuleConfig, len(override.Rules))
	}
	for id, rule := range override.Rules {
		out.Rules[id] = mergeRule(out.Rules[id], rule.Clone())
	}

	return out
}

func replaceIfSet(dst *[]string, src []string) {
	if src != nil {
		*dst = slices.Clone(src)
	}
}

// mergeRule overlays the set fields of override on base. Options merge key
// by key.
func mergeRule(base, override config.RuleConfig) config.RuleConfig {
	if override.Enabled != nil {
		base.Enabled = override.Enabled
	}
	if override.Severity != nil {
		base.Severity = override.Severity
	}
	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(options, base.Options)
		maps.Copy(options, override.Options)
		base.Options = options
	}
	return base
}

// MergeAll layers configs in order; later entries win.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	out := configs[0]
	for _, next := range configs[1:] {
		out = merge(out, next)
	}
	return out
}
