package config

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every check with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml", "json" or "toml".
	Format string

	// IncludeRules is a list of check IDs to include.
	// If empty, all checks are included.
	IncludeRules []string
}

// RuleInfo contains check metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns check information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the checks package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	rules := ruleInfos(opts.IncludeRules)
	switch opts.Format {
	case "json":
		return templateToJSON(rules)
	case "toml":
		return templateToTOML(rules)
	}

	var buf strings.Builder
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Default severity for every check: error, warning, or info
# severity_default: warning

# Guest languages to analyze (empty = all supported)
# languages:
#   - go
#   - javascript

# What to do with malformed converter output: off, log, or fail
validation: log

# Copy-paste detection across files
cpd:
  enabled: false
  min_tokens: 100

# File patterns to ignore (doublestar globs)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	if !opts.Full {
		buf.WriteString(`
# Check-specific configuration
# rules:
#   SL101:
#     options:
#       threshold: 15
`)
		return []byte(buf.String()), nil
	}

	buf.WriteString("\n# Check-specific configuration\nrules:\n")
	for _, rule := range rules {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
	}

	return []byte(buf.String()), nil
}

// ruleInfos returns the registered checks, filtered and sorted by ID.
func ruleInfos(include []string) []RuleInfo {
	var rules []RuleInfo
	if DefaultRuleInfoProvider != nil {
		rules = slices.Clone(DefaultRuleInfoProvider())
	}

	if len(include) > 0 {
		rules = slices.DeleteFunc(rules, func(r RuleInfo) bool {
			return !slices.Contains(include, r.ID)
		})
	}

	slices.SortFunc(rules, func(a, b RuleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rules
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateDocument is the default configuration with every check, as
// generic values for the JSON and TOML encoders.
func templateDocument(rules []RuleInfo) map[string]any {
	rulesMap := make(map[string]any, len(rules))
	for _, r := range rules {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}

	defaults := NewConfig()
	return map[string]any{
		"validation": string(defaults.Validation),
		"cpd": map[string]any{
			"enabled":    defaults.CPD.Enabled,
			"min_tokens": defaults.CPD.MinTokens,
		},
		"ignore": []string{"vendor/**", "node_modules/**"},
		"rules":  rulesMap,
	}
}

func templateToJSON(rules []RuleInfo) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(templateDocument(rules), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

func templateToTOML(rules []RuleInfo) ([]byte, error) {
	tomlBytes, err := toml.Marshal(templateDocument(rules))
	if err != nil {
		return nil, fmt.Errorf("marshal TOML: %w", err)
	}
	return []byte(DefaultTemplateHeader() + "\n\n" + string(tomlBytes)), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# goslang configuration
# See: https://github.com/yaklabco/goslang`
}
