package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goslang/internal/configloader"
	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/lint"
)

type configFlags struct {
	format string
	env    bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration analyze would run with: defaults, system, user
and project files and GOSLANG_* variables merged in precedence order. Rule
keys are shown as check IDs.

Examples:
  goslang config                  Print as YAML
  goslang config --format toml    Print as TOML
  goslang config --env            List the supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.env {
				return listEnvVars(cmd)
			}
			return printConfig(cmd, flags.format)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml, toml or json")
	cmd.Flags().BoolVar(&flags.env, "env", false, "List supported environment variables instead")

	return cmd
}

func printConfig(cmd *cobra.Command, format string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Registry:     lint.DefaultRegistry,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, warning := range loaded.Warnings {
		logging.Default().Warn(warning)
	}

	body, err := loaded.Config.Encode(format)
	if err != nil {
		return err
	}

	var out strings.Builder
	if format != "json" {
		out.WriteString("# resolved goslang configuration\n")
		for _, path := range loaded.LoadedFrom {
			out.WriteString("# from " + path + "\n")
		}
		out.WriteString("\n")
	}
	out.Write(body)

	if _, err := fmt.Fprint(cmd.OutOrStdout(), out.String()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func listEnvVars(cmd *cobra.Command) error {
	vars := configloader.ListEnvVars()
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s\n", name, vars[name]); err != nil {
			return fmt.Errorf("write environment variables: %w", err)
		}
	}
	return nil
}
