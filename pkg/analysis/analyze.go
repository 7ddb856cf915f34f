package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/cpd"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/runner"
	"github.com/yaklabco/goslang/pkg/tree"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	checkMap   map[string]*CheckAnalysis
	fileMap    map[string]*FileAnalysis
	checkFiles map[string]map[string]bool
	fileChecks map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		checkMap:   make(map[string]*CheckAnalysis),
		fileMap:    make(map[string]*FileAnalysis),
		checkFiles: make(map[string]map[string]bool),
		fileChecks: make(map[string]map[string]bool),
	}
}

// normalizeSeverity returns the severity string, defaulting to warning.
func normalizeSeverity(sev config.Severity) string {
	if sev == "" {
		return string(config.SeverityWarning)
	}
	return string(sev)
}

// tally increments the counter matching severity.
func tally(severity string, errors, warnings, infos *int) {
	switch config.Severity(severity) {
	case config.SeverityError:
		*errors++
	case config.SeverityWarning:
		*warnings++
	case config.SeverityInfo:
		*infos++
	}
}

func (ctx *analysisContext) fileAnalysis(path, language string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path, Language: language}
		ctx.fileChecks[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) checkAnalysis(checkID, checkName string) *CheckAnalysis {
	if _, ok := ctx.checkMap[checkID]; !ok {
		ctx.checkMap[checkID] = &CheckAnalysis{
			CheckID:   checkID,
			CheckName: checkName,
		}
		ctx.checkFiles[checkID] = make(map[string]bool)
	}
	return ctx.checkMap[checkID]
}

// location converts a tree range to 1-based columns; nil means the file.
func location(textRange *tree.TextRange) Location {
	if textRange == nil {
		return Location{}
	}
	return Location{
		StartLine:   textRange.Start.Line,
		StartColumn: textRange.Start.LineOffset + 1,
		EndLine:     textRange.End.Line,
		EndColumn:   textRange.End.LineOffset + 1,
	}
}

func createIssueEntry(path, severity string, issue *lint.Issue) IssueEntry {
	entry := IssueEntry{
		Location:  location(issue.Range),
		FilePath:  path,
		CheckID:   issue.CheckID,
		CheckName: issue.CheckName,
		Severity:  severity,
		Message:   issue.Message,
		Gap:       issue.Gap,
	}
	for _, secondary := range issue.Secondary {
		entry.Secondary = append(entry.Secondary, SecondaryEntry{
			Location: location(&secondary.Range),
			Message:  secondary.Message,
		})
	}
	return entry
}

func createFailureEntry(path string, failure *lint.Failure) FailureEntry {
	entry := FailureEntry{
		FilePath: path,
		CheckID:  failure.CheckID,
		Message:  failure.Message,
	}
	if failure.Pointer != nil {
		entry.Line = failure.Pointer.Line
		entry.Column = failure.Pointer.LineOffset + 1
	}
	return entry
}

func createDuplicationEntry(duplication cpd.Duplication, workDir string) DuplicationEntry {
	entry := DuplicationEntry{Tokens: duplication.Tokens}
	for _, block := range duplication.Blocks {
		entry.Blocks = append(entry.Blocks, BlockEntry{
			FilePath:  makeRelativePath(block.Path, workDir),
			StartLine: block.StartLine,
			EndLine:   block.EndLine,
		})
	}
	return entry
}

func (ctx *analysisContext) buildByCheck(opts Options) []CheckAnalysis {
	result := make([]CheckAnalysis, 0, len(ctx.checkMap))
	for checkID, ca := range ctx.checkMap {
		for f := range ctx.checkFiles[checkID] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortCheckAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	result := make([]FileAnalysis, 0, len(ctx.fileMap))
	for path, fa := range ctx.fileMap {
		for c := range ctx.fileChecks[path] {
			fa.Checks = append(fa.Checks, c)
		}
		slices.Sort(fa.Checks)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through issues to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()
	report.Metrics = result.Metrics

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		switch {
		case file.Error != nil:
			report.Totals.FileErrors++
			report.FileErrors = append(report.FileErrors, FileErrorEntry{
				FilePath: displayPath,
				Error:    file.Error.Error(),
			})
			continue
		case file.Skipped != "" || file.Result == nil:
			report.Totals.FilesSkipped++
			continue
		}

		report.Totals.FilesAnalyzed++
		fa := ctx.fileAnalysis(displayPath, file.Language)
		fa.Metrics = file.Metrics

		for i := range file.Result.Failures {
			report.Totals.Failures++
			fa.Failures++
			report.Failures = append(report.Failures, createFailureEntry(displayPath, &file.Result.Failures[i]))
		}

		if file.Result.HasIssues() {
			report.Totals.FilesWithIssues++
		}
		for i := range file.Result.Issues {
			issue := &file.Result.Issues[i]
			severity := normalizeSeverity(issue.Severity)

			ca := ctx.checkAnalysis(issue.CheckID, issue.CheckName)
			report.Totals.Issues++
			fa.Issues++
			ca.Issues++
			tally(severity, &report.Totals.Errors, &report.Totals.Warnings, &report.Totals.Infos)
			tally(severity, &fa.Errors, &fa.Warnings, &fa.Infos)
			tally(severity, &ca.Errors, &ca.Warnings, &ca.Infos)
			ctx.fileChecks[displayPath][issue.CheckID] = true
			ctx.checkFiles[issue.CheckID][displayPath] = true

			if opts.IncludeIssues {
				report.Issues = append(report.Issues, createIssueEntry(displayPath, severity, issue))
			}
		}
	}

	for _, duplication := range result.Duplications {
		report.Duplications = append(report.Duplications, createDuplicationEntry(duplication, opts.WorkingDir))
	}
	report.Totals.Duplications = len(report.Duplications)

	if opts.IncludeByCheck {
		report.ByCheck = ctx.buildByCheck(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortCheckAnalysis(checks []CheckAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(checks, func(left, right CheckAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.CheckID, right.CheckID)
		case SortBySeverity:
			// Errors first, then warnings, then volume.
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(right.Issues, left.Issues)
			}
			return cmp.Or(result, cmp.Compare(left.CheckID, right.CheckID))
		default: // SortByCount
			result := cmp.Compare(left.Issues, right.Issues)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.CheckID, right.CheckID))
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			result := cmp.Compare(right.Errors+right.Failures, left.Errors+left.Failures)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(right.Issues, left.Issues)
			}
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		default: // SortByCount
			result := cmp.Compare(left.Issues, right.Issues)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		}
	})
}
