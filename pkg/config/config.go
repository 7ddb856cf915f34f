// Package config defines the configuration types shared by the engine,
// the runner and the CLI. These types are plain data with no dependency on
// the loaders that fill them.
package config

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true for a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-check configuration.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Severity *string        `mapstructure:"severity" yaml:"severity,omitempty" toml:"severity,omitempty"`
	Options  map[string]any `mapstructure:"options" yaml:"options,omitempty" toml:"options,omitempty"`
}

// ValidationPolicy decides what happens when a converted tree is malformed.
type ValidationPolicy string

const (
	// ValidationOff skips the validation pass.
	ValidationOff ValidationPolicy = "off"

	// ValidationLog reports violations in the log and analyzes the file anyway.
	ValidationLog ValidationPolicy = "log"

	// ValidationFail turns violations into a failure of the file.
	ValidationFail ValidationPolicy = "fail"
)

// IsValid returns true for a known policy.
func (p ValidationPolicy) IsValid() bool {
	switch p {
	case ValidationOff, ValidationLog, ValidationFail:
		return true
	default:
		return false
	}
}

// DefaultCPDMinTokens is the smallest duplicated token sequence reported by
// copy-paste detection.
const DefaultCPDMinTokens = 100

// CPDConfig controls copy-paste detection across files.
type CPDConfig struct {
	Enabled   bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	MinTokens int  `mapstructure:"min_tokens" yaml:"min_tokens" toml:"min_tokens"`
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how check identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "cognitive-complexity"
	RuleFormatID       RuleFormat = "id"       // "SL101"
	RuleFormatCombined RuleFormat = "combined" // "SL101/cognitive-complexity"
)

// Config is the root configuration structure.
type Config struct {
	// SeverityDefault is the severity of checks that don't specify one.
	// Empty keeps each check's own default.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default,omitempty" toml:"severity_default,omitempty"`

	// Rules contains per-check configuration keyed by check ID.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules,omitempty" toml:"rules,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Languages restricts analysis to these guest languages. Empty means
	// every supported language.
	Languages []string `mapstructure:"languages" yaml:"languages,omitempty" toml:"languages,omitempty"`

	// Validation is the policy for malformed converter output.
	Validation ValidationPolicy `mapstructure:"validation" yaml:"validation,omitempty" toml:"validation,omitempty"`

	// CPD configures copy-paste detection.
	CPD CPDConfig `mapstructure:"cpd" yaml:"cpd" toml:"cpd"`

	// MaxFileSize is the largest source file analyzed, in bytes. Zero uses
	// the built-in limit.
	MaxFileSize int64 `mapstructure:"max_file_size" yaml:"max_file_size,omitempty" toml:"max_file_size,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// RuleFormat controls how check identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-" toml:"-"`

	// EnableRules contains check IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// DisableRules contains check IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// Strict makes warnings fail the run.
	Strict bool `mapstructure:"-" yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:      make(map[string]RuleConfig),
		Validation: ValidationLog,
		CPD: CPDConfig{
			Enabled:   false,
			MinTokens: DefaultCPDMinTokens,
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// ValidationPolicy returns the configured policy, defaulting to log.
func (c *Config) ValidationPolicy() ValidationPolicy {
	if c == nil || c.Validation == "" {
		return ValidationLog
	}
	return c.Validation
}

// CPDMinTokens returns the configured window, defaulting when unset.
func (c *Config) CPDMinTokens() int {
	if c == nil || c.CPD.MinTokens <= 0 {
		return DefaultCPDMinTokens
	}
	return c.CPD.MinTokens
}
