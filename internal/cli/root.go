// Package cli provides the Cobra command structure for goslang.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goslang/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goslang command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goslang",
		Short: "Language-agnostic static analysis for Go and JavaScript",
		Long: `goslang converts source files into a common, language-agnostic syntax tree
and runs a shared catalog of checks over it: cognitive complexity, duplicated
branches and literals, dead code, comment markers and more. It also computes
file metrics and finds copy-pasted blocks across files.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newAnalyzeCommand(info))
	rootCmd.AddCommand(newChecksCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// --help must be known as a boolean before the subcommand is resolved,
	// or it swallows the next argument as its value.
	rootCmd.InitDefaultHelpFlag()
	applyHelp(rootCmd)

	return rootCmd
}
