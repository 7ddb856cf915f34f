package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goslang/internal/configloader"
	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	_ "github.com/yaklabco/goslang/pkg/lint/checks" // Register built-in checks
	"github.com/yaklabco/goslang/pkg/parser/treesitter"
	"github.com/yaklabco/goslang/pkg/reporter"
	"github.com/yaklabco/goslang/pkg/runner"
)

// ErrIssuesFound is returned when the run should exit non-zero because of
// what it found.
var ErrIssuesFound = errors.New("issues found")

type analyzeFlags struct {
	format       string
	ruleFormat   string
	validation   string
	ignore       []string
	enable       []string
	disable      []string
	languages    []string
	jobs         int
	cpdMinTokens int
	cpd          bool
	strict       bool
	noContext    bool
	compact      bool
}

func newAnalyzeCommand(info BuildInfo) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:     "analyze [paths...]",
		Aliases: []string{"lint"},
		Short:   "Analyze Go and JavaScript source files",
		Long:    analyzeLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, flags, info)
		},
	}

	addAnalyzeFlags(cmd, flags)

	return cmd
}

const analyzeLongDescription = `Analyze source files with the enabled checks.

By default, analyzes every supported source file in the current directory
and its subdirectories, skipping vendored and generated files. Specify paths
to analyze specific files or directories.

--enable and --disable accept check IDs (SL101), names
(cognitive-complexity), Sonar keys (S3776) or tags (complexity).

Examples:
  goslang analyze                          # Analyze current directory
  goslang analyze ./internal web/app.js    # Analyze selected paths
  goslang analyze --language go            # Only Go files
  goslang analyze --enable tabs            # Turn on an opt-in check
  goslang analyze --disable duplication    # Turn off a group of checks
  goslang analyze --cpd                    # Also report copy-pasted blocks
  goslang analyze --format sarif           # SARIF for code scanning
  goslang analyze --strict                 # Fail on warnings too`

func runAnalyze(cmd *cobra.Command, args []string, flags *analyzeFlags, info BuildInfo) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	registry := lint.DefaultRegistry

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Registry:     registry,
		CLIConfig:    cliConfig(cmd, flags, registry, logger),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldPolicy, cfg.ValidationPolicy(),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldCPD, cfg.CPD.Enabled,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	engine, err := lint.NewEngine(registry, cfg, treesitter.NewGo(), treesitter.NewJavaScript())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer engine.Close()

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Languages:    cfg.Languages,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting analysis",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("analysis failed"), err)
	}
	for _, runErr := range result.Errors {
		logger.Warn("analysis error", logging.FieldError, runErr)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
		Registry:    registry,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, cfg.Strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

// cliConfig turns the flags the user actually set into a config layer, so
// unset flags never override files or the environment.
func cliConfig(cmd *cobra.Command, flags *analyzeFlags, registry *lint.Registry, logger *log.Logger) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("validation") {
		cfg.Validation = config.ValidationPolicy(flags.validation)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("cpd-min-tokens") {
		cfg.CPD.MinTokens = flags.cpdMinTokens
	}
	cfg.CPD.Enabled = flags.cpd
	cfg.Strict = flags.strict
	cfg.Ignore = flags.ignore
	cfg.Languages = flags.languages
	cfg.EnableRules = expandChecks(registry, flags.enable, logger)
	cfg.DisableRules = expandChecks(registry, flags.disable, logger)

	return cfg
}

func expandChecks(registry *lint.Registry, keys []string, logger *log.Logger) []string {
	ids, unknown := configloader.ExpandRuleKeys(registry, keys)
	for _, key := range unknown {
		logger.Warn("unknown check", logging.FieldCheck, key)
	}
	return ids
}

func addAnalyzeFlags(cmd *cobra.Command, flags *analyzeFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, summary")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "checks to enable (ID, name, Sonar key or tag)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "checks to disable (ID, name, Sonar key or tag)")
	cmd.Flags().StringSliceVar(&flags.languages, "language", nil, "languages to analyze: go, javascript")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.validation, "validation", "log",
		"policy for malformed syntax trees: off, log, fail")
	cmd.Flags().BoolVar(&flags.cpd, "cpd", false, "report copy-pasted blocks across files")
	cmd.Flags().IntVar(&flags.cpdMinTokens, "cpd-min-tokens", config.DefaultCPDMinTokens,
		"minimum tokens in a copy-pasted block")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
}
