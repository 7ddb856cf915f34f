package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/goslang/internal/logging"
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// Engine error types for categorization.
var (
	// ErrParseFailure indicates the converter could not parse a file.
	ErrParseFailure = errors.New("parse failure")

	// ErrMalformedTree indicates the converter produced an inconsistent tree.
	ErrMalformedTree = errors.New("malformed tree")

	// ErrUnsupportedLanguage indicates no converter handles the language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrCheckFailure indicates a check failed on a node.
	ErrCheckFailure = errors.New("check failure")
)

// FileResult contains the results of analyzing a single file.
type FileResult struct {
	// File is the converted file, nil when parsing failed.
	File *tree.File

	// Issues contains all issues found, ordered by position.
	Issues []Issue

	// Failures contains the analysis errors of the file.
	Failures []Failure

	// Violations contains the well-formedness problems of the tree, when
	// validation ran.
	Violations []tree.Violation
}

// HasIssues returns true if any issues were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Issues) > 0
}

// IssueCount returns the total number of issues.
func (fr *FileResult) IssueCount() int {
	return len(fr.Issues)
}

// HasFailures returns true if the analysis of the file was not complete.
func (fr *FileResult) HasFailures() bool {
	return len(fr.Failures) > 0
}

// activeCheck is an enabled, initialized check.
type activeCheck struct {
	resolved      ResolvedCheck
	registrations []registration
	parseErrors   []func(ctx *CheckContext, err *tree.ParseError)
}

func (a *activeCheck) id() string {
	return a.resolved.Check.ID()
}

func (a *activeCheck) name() string {
	return a.resolved.Check.Name()
}

// fileRun is the per-file state of one analysis.
type fileRun struct {
	issues   []Issue
	failures []Failure
}

// Engine coordinates conversion and check execution. It is built once per
// run and is safe for concurrent use across files as long as every check
// honours the Check contract on per-file state.
type Engine struct {
	converters map[string]Converter
	checks     []*activeCheck
	validation config.ValidationPolicy
}

// NewEngine resolves the checks of registry against cfg, initializes the
// enabled ones and returns an engine analyzing the languages of converters.
func NewEngine(registry *Registry, cfg *config.Config, converters ...Converter) (*Engine, error) {
	engine := &Engine{
		converters: make(map[string]Converter, len(converters)),
		validation: cfg.ValidationPolicy(),
	}
	for _, converter := range converters {
		engine.converters[converter.Language()] = converter
	}

	for _, resolved := range ResolveChecks(registry, cfg) {
		initCtx := NewInitContext(resolved.Config)
		if err := resolved.Check.Initialize(initCtx); err != nil {
			return nil, fmt.Errorf("initialize check %s: %w", resolved.Check.ID(), err)
		}
		engine.checks = append(engine.checks, &activeCheck{
			resolved:      resolved,
			registrations: initCtx.registrations,
			parseErrors:   initCtx.parseErrors,
		})
	}

	return engine, nil
}

// Languages returns the languages the engine can analyze, sorted.
func (e *Engine) Languages() []string {
	languages := make([]string, 0, len(e.converters))
	for language := range e.converters {
		languages = append(languages, language)
	}
	slices.Sort(languages)
	return languages
}

// Supports reports whether a converter handles language.
func (e *Engine) Supports(language string) bool {
	_, ok := e.converters[language]
	return ok
}

// Checks returns the enabled checks with their resolved configuration.
func (e *Engine) Checks() []ResolvedCheck {
	resolved := make([]ResolvedCheck, 0, len(e.checks))
	for _, check := range e.checks {
		resolved = append(resolved, check.resolved)
	}
	return resolved
}

// Converter returns the converter for language.
func (e *Engine) Converter(language string) (Converter, bool) {
	converter, ok := e.converters[language]
	return converter, ok
}

// Close terminates every converter.
func (e *Engine) Close() {
	for _, converter := range e.converters {
		converter.Terminate()
	}
}

// AnalyzeFile converts content with the converter of language and runs
// every enabled check over the tree in a single pass.
//
// A file that fails to parse, or whose tree is malformed under the "fail"
// validation policy, yields a result holding the failure and the issues of
// parse-error checks; it is not an error. A check that panics or calls
// Fail is stopped for the rest of the file and recorded as a failure; the
// other checks still run. Errors are returned only for cancellation and
// unsupported languages.
func (e *Engine) AnalyzeFile(ctx context.Context, path string, content []byte, language string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	converter, ok := e.converters[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	file, err := converter.Parse(ctx, path, content)
	if err != nil {
		return e.parseFailure(ctx, path, err), nil
	}

	result := &FileResult{File: file}
	if e.validation != config.ValidationOff {
		result.Violations = tree.Validate(file.Root)
		if len(result.Violations) > 0 && !e.acceptViolations(ctx, path, result) {
			return result, nil
		}
	}

	run := &fileRun{}
	e.walk(ctx, file, run)

	result.Issues = sortIssues(run.issues)
	result.Failures = run.failures
	return result, nil
}

// acceptViolations applies the validation policy and reports whether the
// analysis goes on.
func (e *Engine) acceptViolations(ctx context.Context, path string, result *FileResult) bool {
	logger := logging.FromContext(ctx)
	for _, violation := range result.Violations {
		logger.Debug("malformed tree", logging.FieldPath, path, logging.FieldError, violation.String())
	}

	if e.validation == config.ValidationFail {
		result.Failures = append(result.Failures, Failure{
			Path:    path,
			Message: fmt.Sprintf("malformed tree: %s", result.Violations[0]),
			Err:     fmt.Errorf("%w: %d violation(s)", ErrMalformedTree, len(result.Violations)),
		})
		return false
	}

	logger.Warn("malformed tree",
		logging.FieldPath, path,
		logging.FieldViolations, len(result.Violations),
		logging.FieldPolicy, string(e.validation))
	return true
}

// parseFailure builds the result of a file the converter rejected.
func (e *Engine) parseFailure(ctx context.Context, path string, err error) *FileResult {
	failure := Failure{
		Path:    path,
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrParseFailure, err),
	}

	var parseErr *tree.ParseError
	if !errors.As(err, &parseErr) {
		parseErr = tree.NewParseError(err.Error(), nil)
	}
	failure.Message = parseErr.Message
	failure.Pointer = parseErr.Pointer

	logging.FromContext(ctx).Debug("parse failure", logging.FieldPath, path, logging.FieldError, err)

	run := &fileRun{failures: []Failure{failure}}
	for _, check := range e.checks {
		checkCtx := &CheckContext{Ctx: ctx, path: path, check: check, run: run}
		for _, callback := range check.parseErrors {
			if !e.invoke(checkCtx, parseErr.Pointer, func() { callback(checkCtx, parseErr) }) {
				break
			}
		}
	}

	return &FileResult{Issues: sortIssues(run.issues), Failures: run.failures}
}

// walk runs the registered callbacks over the tree of file.
func (e *Engine) walk(ctx context.Context, file *tree.File, run *fileRun) {
	walkCtx := visit.NewContext()
	visitor := visit.NewVisitor()

	for _, check := range e.checks {
		if len(check.registrations) == 0 {
			continue
		}
		checkCtx := &CheckContext{Ctx: ctx, file: file, path: file.Path, walk: walkCtx, check: check, run: run}
		stopped := false
		for _, reg := range check.registrations {
			visitor.Register(reg.kind, func(_ *visit.Context, node tree.Tree) {
				if stopped {
					return
				}
				start := node.TextRange().Start
				stopped = !e.invoke(checkCtx, &start, func() { reg.callback(checkCtx, node) })
			})
		}
	}

	visitor.Scan(walkCtx, file.Root)
}

// invoke runs fn for one check, recovering a panic. It returns false when
// the check failed and must not run again on this file. at locates the
// failure.
func (e *Engine) invoke(checkCtx *CheckContext, at *tree.TextPointer, fn func()) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			e.recordFailure(checkCtx, at, fmt.Errorf("%w: panic: %v", ErrCheckFailure, recovered))
			ok = false
		}
	}()

	fn()

	if checkCtx.failed != nil {
		e.recordFailure(checkCtx, at, fmt.Errorf("%w: %w", ErrCheckFailure, checkCtx.failed))
		return false
	}
	return true
}

func (e *Engine) recordFailure(checkCtx *CheckContext, at *tree.TextPointer, err error) {
	failure := Failure{
		Path:    checkCtx.path,
		CheckID: checkCtx.check.id(),
		Message: err.Error(),
		Pointer: at,
		Err:     err,
	}
	checkCtx.run.failures = append(checkCtx.run.failures, failure)

	logging.FromContext(checkCtx.Ctx).Warn("check failed",
		logging.FieldPath, checkCtx.path,
		logging.FieldCheck, checkCtx.check.id(),
		logging.FieldError, err)
}

// sortIssues orders issues by position then check ID. File-level issues
// come first.
func sortIssues(issues []Issue) []Issue {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		if c := compareRanges(a.Range, b.Range); c != 0 {
			return c
		}
		return cmp.Compare(a.CheckID, b.CheckID)
	})
	return issues
}

func compareRanges(a, b *tree.TextRange) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Start.Compare(b.Start)
	}
}
