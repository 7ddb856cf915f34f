package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
)

type checksFlags struct {
	ruleFormat string
	format     string
	tag        string
}

const formatJSON = "json"

// checkInfo represents a check in JSON output.
type checkInfo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Severity       string   `json:"severity"`
	DefaultEnabled bool     `json:"defaultEnabled"`
	Tags           []string `json:"tags,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
}

func newChecksCommand() *cobra.Command {
	flags := &checksFlags{}

	cmd := &cobra.Command{
		Use:     "checks",
		Aliases: []string{"rules"},
		Short:   "List available checks",
		Long: `List all available checks with their IDs, descriptions, default
severity, tags and Sonar keys. Checks disabled by default are marked off.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := lint.DefaultRegistry
			checks := filterByTag(registry.Checks(), flags.tag)

			if flags.format == formatJSON {
				return outputChecksJSON(cmd.OutOrStdout(), registry, checks)
			}
			if flags.format != "text" {
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}

			logger := logging.NewInteractive()
			if len(checks) == 0 {
				logger.Info("no checks match", logging.FieldTags, flags.tag)
				return nil
			}

			logger.Info("available checks")

			ruleFormat := config.RuleFormat(flags.ruleFormat)
			for _, check := range checks {
				enabled := "on"
				if !check.DefaultEnabled() {
					enabled = "off"
				}

				keyvals := []any{
					logging.FieldSeverity, check.DefaultSeverity(),
					logging.FieldEnabled, enabled,
					logging.FieldTags, strings.Join(check.Tags(), ","),
				}
				if aliases := registry.Aliases(check.ID()); len(aliases) > 0 {
					keyvals = append(keyvals, logging.FieldAliases, strings.Join(aliases, ","))
				}
				keyvals = append(keyvals, logging.FieldDescription, check.Description())

				logger.Info(ruleFormat.Label(check.ID(), check.Name()), keyvals...)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "only list checks with this tag")

	return cmd
}

func filterByTag(checks []lint.Check, tag string) []lint.Check {
	if tag == "" {
		return checks
	}
	var out []lint.Check
	for _, check := range checks {
		if slices.Contains(check.Tags(), tag) {
			out = append(out, check)
		}
	}
	return out
}

// outputChecksJSON writes checks as a JSON array.
func outputChecksJSON(w io.Writer, registry *lint.Registry, checks []lint.Check) error {
	infos := make([]checkInfo, 0, len(checks))
	for _, check := range checks {
		infos = append(infos, checkInfo{
			ID:             check.ID(),
			Name:           check.Name(),
			Description:    check.Description(),
			Severity:       string(check.DefaultSeverity()),
			DefaultEnabled: check.DefaultEnabled(),
			Tags:           check.Tags(),
			Aliases:        registry.Aliases(check.ID()),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding checks: %w", err)
	}
	return nil
}
