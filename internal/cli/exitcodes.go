package cli

import (
	"errors"

	"github.com/yaklabco/goslang/pkg/runner"
)

// Exit codes for goslang.
const (
	// ExitSuccess indicates a clean run.
	ExitSuccess = 0

	// ExitIssues indicates error-severity issues, analysis failures or
	// unreadable files; with --strict, warnings too.
	ExitIssues = 1

	// ExitFailure indicates the command itself failed: bad flags, invalid
	// configuration or an interrupted run.
	ExitFailure = 2
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result.HasErrors() {
		return ExitIssues
	}
	if strict && result.HasWarnings() {
		return ExitIssues
	}
	return ExitSuccess
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	default:
		return ExitFailure
	}
}
