package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/fsutil"
	"github.com/yaklabco/goslang/pkg/langdetect"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrFileTooLarge indicates the file exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// Skip reasons reported in PipelineResult.SkipReason.
const (
	SkipUnknownLanguage = "unknown language"
	SkipLanguage        = "language not analyzed"
	SkipGenerated       = "generated file"
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains the issues and failures of the analysis. It is
	// nil when the file was skipped.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Language is the detected guest language.
	Language string

	// Info is the file state when it was read, nil for in-memory content.
	Info *fsutil.FileInfo

	// Skipped is true if the file was not analyzed.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.FileResult != nil && pr.HasFailures():
		return "incomplete"
	case pr.FileResult != nil && pr.HasIssues():
		return "issues found"
	default:
		return "ok"
	}
}

// Pipeline reads, classifies and analyzes a single file.
type Pipeline struct {
	// Engine is the engine used for conversion and check execution.
	Engine *Engine

	// MaxFileSize is the read limit in bytes; zero uses the fsutil default.
	MaxFileSize int64

	// Languages restricts analysis to these languages. Empty means every
	// language the engine supports.
	Languages []string
}

// NewPipeline creates a pipeline over engine with the limits of cfg.
func NewPipeline(engine *Engine, cfg *config.Config) *Pipeline {
	p := &Pipeline{Engine: engine}
	if cfg != nil {
		p.MaxFileSize = cfg.MaxFileSize
		p.Languages = cfg.Languages
	}
	return p
}

// ProcessFile reads path, detects its language and analyzes it. Read
// errors are categorized with the pipeline error types.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path, p.MaxFileSize)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content, "")
	if err != nil {
		return nil, err
	}
	result.Info = info
	return result, nil
}

// ProcessContent analyzes in-memory content. An empty language is
// detected from path and content. Files in an unknown or excluded language,
// and generated files, are skipped.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte, language string) (*PipelineResult, error) {
	if language == "" {
		language = langdetect.ForFile(path, content)
	}

	result := &PipelineResult{Path: path, Language: language}

	switch {
	case language == "":
		result.SkipReason = SkipUnknownLanguage
	case !p.Engine.Supports(language) ||
		(len(p.Languages) > 0 && !slices.Contains(p.Languages, language)):
		result.SkipReason = SkipLanguage
	case langdetect.IsGenerated(path, content):
		result.SkipReason = SkipGenerated
	}
	if result.SkipReason != "" {
		result.Skipped = true
		return result, nil
	}

	fileResult, err := p.Engine.AnalyzeFile(ctx, path, content, language)
	if err != nil {
		return nil, err
	}
	result.FileResult = fileResult
	return result, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, fsutil.ErrTooLarge):
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	default:
		return err
	}
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrUnsupportedLanguage)
}
