// Package main is the entry point for the goslang CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goslang/internal/cli"
	"github.com/yaklabco/goslang/internal/logging"

	// Import checks package to register built-in checks via init().
	_ "github.com/yaklabco/goslang/pkg/lint/checks"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.Execute()
	// ErrIssuesFound only selects the exit code; the report already said why.
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return cli.ExitCode(err)
}
