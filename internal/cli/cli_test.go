package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/internal/cli"
	"github.com/yaklabco/goslang/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "goslang", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"analyze"}, want: "analyze"},
		{args: []string{"lint"}, want: "analyze"},
		{args: []string{"checks"}, want: "checks"},
		{args: []string{"rules"}, want: "checks"},
		{args: []string{"config"}, want: "config"},
		{args: []string{"init"}, want: "init"},
		{args: []string{"version"}, want: "version"},
	}

	for _, tt := range tests {
		subCmd, _, err := cmd.Find(tt.args)
		require.NoError(t, err, "subcommand %v", tt.args)
		assert.Equal(t, tt.want, subCmd.Name())
	}
}

func TestAnalyzeCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	analyzeCmd, _, err := cmd.Find([]string{"analyze"})
	require.NoError(t, err)

	for _, name := range []string{
		"format", "rule-format", "ignore", "enable", "disable", "language",
		"jobs", "validation", "cpd", "cpd-min-tokens", "strict", "no-context", "compact",
	} {
		assert.NotNil(t, analyzeCmd.Flags().Lookup(name), "flag %q", name)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q", name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "goslang")
	assert.Contains(t, stdout.String(), "test-version")
	assert.Contains(t, stdout.String(), "test-commit")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--help", "--color", "never"},
		{"--color", "never", "--help"},
		{"--color=never", "--help"},
	} {
		t.Run("root "+strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetArgs(args)
			require.NoError(t, cmd.Execute())

			out := stdout.String()
			assert.Contains(t, out, "Usage:\n  goslang [command]")
			assert.Contains(t, out, "Available Commands:")
			assert.Contains(t, out, "  analyze ")
			assert.Contains(t, out, "  checks ")
			assert.Contains(t, out, `Use "goslang [command] --help"`)
			assert.NotContains(t, out, "\x1b[")
		})
	}

	t.Run("analyze", func(t *testing.T) {
		t.Parallel()

		cmd := cli.NewRootCommand(testInfo())
		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetArgs([]string{"analyze", "--help", "--color", "never"})
		require.NoError(t, cmd.Execute())

		out := stdout.String()
		assert.Contains(t, out, "goslang analyze [paths...] [flags]")
		assert.Contains(t, out, "Aliases:\n  analyze, lint")
		assert.Contains(t, out, "--rule-format string")
		assert.Contains(t, out, "(default name)")
		assert.Contains(t, out, "--cpd ")
		assert.Contains(t, out, "Global Flags:")
		assert.Contains(t, out, "--config string")
		assert.NotContains(t, out, "\x1b[")
	})
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	withSeverity := func(severity string) *runner.Result {
		return &runner.Result{Stats: runner.Stats{
			IssuesBySeverity: map[string]int{severity: 1},
		}}
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{name: "nil result", want: cli.ExitSuccess},
		{name: "clean", result: &runner.Result{}, want: cli.ExitSuccess},
		{name: "error issue", result: withSeverity("error"), want: cli.ExitIssues},
		{name: "warning", result: withSeverity("warning"), want: cli.ExitSuccess},
		{name: "warning strict", result: withSeverity("warning"), strict: true, want: cli.ExitIssues},
		{name: "info strict", result: withSeverity("info"), strict: true, want: cli.ExitSuccess},
		{name: "analysis failure", result: &runner.Result{Stats: runner.Stats{Failures: 1}}, want: cli.ExitIssues},
		{name: "unreadable file", result: &runner.Result{Stats: runner.Stats{FilesErrored: 1}}, want: cli.ExitIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitIssues, cli.ExitCode(cli.ErrIssuesFound))
	assert.Equal(t, cli.ExitIssues, cli.ExitCode(errors.Join(errors.New("wrapped"), cli.ErrIssuesFound)))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(errors.New("bad flag")))
}
