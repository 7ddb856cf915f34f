package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goslang/internal/configloader"
	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/config"
)

type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

// defaultInitPaths maps each template format to the file init writes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultInitPaths = map[string]string{
	"yaml": ".goslang.yml",
	"json": ".goslang.json",
	"toml": ".goslang.toml",
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new goslang configuration file",
		Long: `Create a new .goslang.yml configuration file in the current directory.
The file lists every check with its default state and severity, ready to be
enabled, disabled or tuned.

Examples:
  goslang init                       Create .goslang.yml
  goslang init --full                Document every check in the file
  goslang init --format toml         Create .goslang.toml instead
  goslang init --output ci/goslang.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all checks documented")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml, toml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .goslang.yml, .goslang.toml or .goslang.json)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	defaultPath, ok := defaultInitPaths[flags.format]
	if !ok {
		return fmt.Errorf("invalid format %q: must be yaml, toml or json", flags.format)
	}
	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultPath
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteConfig(ctx, outputPath, content, flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'goslang checks' to see all available checks")

	return nil
}
