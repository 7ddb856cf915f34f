package reporter

import (
	"fmt"

	"github.com/yaklabco/goslang/pkg/config"
)

// Format names an output format. It is the configuration type, so a
// loaded config value can be passed through unchanged.
type Format = config.OutputFormat

const (
	FormatText    = config.FormatText
	FormatTable   = config.FormatTable
	FormatJSON    = config.FormatJSON
	FormatSARIF   = config.FormatSARIF
	FormatSummary = config.FormatSummary
)

// ParseFormat resolves a format name. The empty name means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if format := Format(name); format.IsValid() {
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: text, table, json, sarif, summary", name)
}
