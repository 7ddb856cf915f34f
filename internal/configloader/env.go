package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goslang/pkg/config"
)

// envVarPrefix starts every environment variable goslang reads.
const envVarPrefix = "GOSLANG_"

// envVar binds one GOSLANG_* variable to a configuration field.
type envVar struct {
	field       string
	description string
	set         func(cfg *config.Config, value string) error
}

// envVars is keyed by variable name without the prefix.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"SEVERITY_DEFAULT": {"severity_default", "Default severity: error, warning, or info",
		func(c *config.Config, v string) error { c.SeverityDefault = v; return nil }},
	"FORMAT": {"format", "Output format: text, table, json, sarif, or summary",
		func(c *config.Config, v string) error { c.Format = config.OutputFormat(v); return nil }},
	"RULE_FORMAT": {"rule_format", "Check identifiers in output: name, id, or combined",
		func(c *config.Config, v string) error { c.RuleFormat = config.RuleFormat(v); return nil }},
	"VALIDATION": {"validation", "Malformed tree policy: off, log, or fail",
		func(c *config.Config, v string) error { c.Validation = config.ValidationPolicy(v); return nil }},
	"JOBS": {"jobs", "Number of parallel workers (0 = auto)",
		intSetter(func(c *config.Config, n int64) { c.Jobs = int(n) })},
	"CPD": {"cpd.enabled", "Enable copy-paste detection: true or false",
		boolSetter(func(c *config.Config, b bool) { c.CPD.Enabled = b })},
	"CPD_MIN_TOKENS": {"cpd.min_tokens", "Smallest duplicated token sequence reported",
		intSetter(func(c *config.Config, n int64) { c.CPD.MinTokens = int(n) })},
	"MAX_FILE_SIZE": {"max_file_size", "Largest file analyzed, in bytes",
		intSetter(func(c *config.Config, n int64) { c.MaxFileSize = n })},
	"STRICT": {"strict", "Fail on warnings: true or false",
		boolSetter(func(c *config.Config, b bool) { c.Strict = b })},
	"IGNORE": {"ignore", "Comma-separated list of ignore patterns",
		func(c *config.Config, v string) error { c.Ignore = splitList(v); return nil }},
	"LANGUAGES": {"languages", "Comma-separated list of languages to analyze",
		func(c *config.Config, v string) error { c.Languages = splitList(v); return nil }},
}

func intSetter(apply func(*config.Config, int64)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		apply(cfg, n)
		return nil
	}
}

func boolSetter(apply func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		apply(cfg, b)
		return nil
	}
}

// splitList splits a comma-separated value and drops empty elements.
func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadFromEnv applies the set GOSLANG_* variables to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for suffix, v := range envVars {
		value := os.Getenv(envVarPrefix + suffix)
		if value == "" {
			continue
		}
		if err := v.set(cfg, value); err != nil {
			return fmt.Errorf("%s%s: %w", envVarPrefix, suffix, err)
		}
	}
	return nil
}

// GetEnvVarName returns the variable that sets a configuration field, or
// "" when none does.
func GetEnvVarName(field string) string {
	for suffix, v := range envVars {
		if v.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars maps every supported variable to its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.description
	}
	return out
}
