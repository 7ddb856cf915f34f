package runner_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/fsutil"
	"github.com/yaklabco/goslang/pkg/langdetect"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/lint/checks"
	"github.com/yaklabco/goslang/pkg/parser/treesitter"
	"github.com/yaklabco/goslang/pkg/runner"
)

const (
	cleanGo   = "package p\n\nfunc F() int {\n\treturn 1\n}\n"
	todoGo    = "package p\n\n// TODO: remove\nfunc G() int {\n\treturn 2\n}\n"
	brokenGo  = "package p\n\nfunc f( {\n"
	cleanJS   = "const answer = 42;\n"
	generated = "// Code generated by stringer. DO NOT EDIT.\n\npackage p\n\n// TODO: ignored\n"
)

func newRunner(t *testing.T, cfg *config.Config) *runner.Runner {
	t.Helper()

	registry := lint.NewRegistry()
	checks.RegisterAll(registry)

	engine, err := lint.NewEngine(registry, cfg, treesitter.NewGo(), treesitter.NewJavaScript())
	require.NoError(t, err)
	t.Cleanup(engine.Close)

	return runner.New(engine)
}

func TestNew(t *testing.T) {
	t.Parallel()

	r := newRunner(t, config.NewConfig())
	assert.NotNil(t, r.Engine)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"clean.go":        cleanGo,
		"todo.go":         todoGo,
		"app.js":          cleanJS,
		"broken.go":       brokenGo,
		"zz_generated.go": generated,
	})

	cfg := config.NewConfig()
	result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       2,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 5)
	for i := 1; i < len(result.Files); i++ {
		assert.Less(t, result.Files[i-1].Path, result.Files[i].Path)
	}

	byName := make(map[string]runner.FileOutcome, len(result.Files))
	for _, outcome := range result.Files {
		byName[filepath.Base(outcome.Path)] = outcome
	}

	assert.Equal(t, langdetect.JavaScript, byName["app.js"].Language)
	assert.False(t, byName["clean.go"].Result.HasIssues())
	assert.Equal(t, 1, byName["clean.go"].Metrics.Functions)

	todo := byName["todo.go"].Result
	require.NotNil(t, todo)
	require.Len(t, todo.Issues, 1)
	assert.Equal(t, "SL117", todo.Issues[0].CheckID)

	broken := byName["broken.go"].Result
	require.NotNil(t, broken)
	assert.Nil(t, broken.File)
	assert.True(t, broken.HasFailures())

	assert.Equal(t, runner.SkipGenerated, byName["zz_generated.go"].Skipped)

	stats := result.Stats
	assert.Equal(t, 5, stats.FilesDiscovered)
	assert.Equal(t, 4, stats.FilesAnalyzed)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 1, stats.FilesFailed)
	assert.Equal(t, 2, stats.FilesWithIssues)
	assert.Equal(t, 1, stats.IssuesBySeverity[string(config.SeverityInfo)])
	assert.Equal(t, 1, stats.IssuesBySeverity[string(config.SeverityError)])
	assert.Equal(t, 2, result.Metrics.Functions)
	assert.True(t, result.HasErrors())
	assert.True(t, result.HasIssues())
	assert.Empty(t, result.Duplications)
}

func TestRunner_Run_Languages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.go": cleanGo, "b.js": cleanJS})

	cfg := config.NewConfig()
	result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Languages:  []string{langdetect.JavaScript},
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesAnalyzed)
	require.Len(t, result.Files, 2)
	assert.Equal(t, runner.SkipLanguage, result.Files[0].Skipped)
	assert.Empty(t, result.Files[1].Skipped)
}

func TestRunner_Run_ExtensionlessScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"tool": "#!/usr/bin/env node\nconst x = a || false;\n"})

	cfg := config.NewConfig()
	result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
		Paths:      []string{"tool"},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, langdetect.JavaScript, result.Files[0].Language)
	require.NotNil(t, result.Files[0].Result)
	assert.True(t, result.Files[0].Result.HasIssues())
}

func TestRunner_Run_FileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"big.go":   cleanGo + "// " + strings.Repeat("x", 64) + "\n",
		"small.go": cleanGo,
	})

	cfg := config.NewConfig()
	cfg.MaxFileSize = int64(len(cleanGo))
	result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesAnalyzed)
	require.ErrorIs(t, result.Files[0].Error, fsutil.ErrTooLarge)
	assert.True(t, result.HasErrors())
}

func TestRunner_Run_CopyPasteDetection(t *testing.T) {
	t.Parallel()

	const body = `package p

func compute(values []int) int {
	total := 0
	for _, v := range values {
		if v > 10 {
			total += v * 2
		} else {
			total -= v
		}
	}
	return total
}
`
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.go": body, "b.go": body, "c.go": cleanGo})

	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{name: "disabled"},
		{name: "enabled", enabled: true, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.CPD.Enabled = tt.enabled
			cfg.CPD.MinTokens = 20
			result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
				WorkingDir: dir,
				Config:     cfg,
			})
			require.NoError(t, err)
			require.Len(t, result.Duplications, tt.want)
			if tt.want == 0 {
				return
			}

			blocks := result.Duplications[0].Blocks
			require.Len(t, blocks, 2)
			assert.Equal(t, "a.go", filepath.Base(blocks[0].Path))
			assert.Equal(t, "b.go", filepath.Base(blocks[1].Path))
			assert.Equal(t, 3, blocks[0].StartLine)
		})
	}
}

func TestRunner_Run_SerialVsParallel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[name+".go"] = todoGo
		files[name+".js"] = "// FIXME " + name + "\n" + cleanJS
	}
	writeFiles(t, dir, files)

	run := func(jobs int) *runner.Result {
		cfg := config.NewConfig()
		result, err := newRunner(t, cfg).Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     cfg,
		})
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Issues, parallel.Files[i].Result.Issues)
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.go": cleanGo})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.NewConfig()
	_, err := newRunner(t, cfg).Run(ctx, runner.Options{WorkingDir: dir, Config: cfg})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_Predicates(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	assert.False(t, nilResult.HasErrors())
	assert.False(t, nilResult.HasWarnings())
	assert.False(t, nilResult.HasIssues())

	result := &runner.Result{Stats: runner.Stats{
		IssuesTotal:      1,
		IssuesBySeverity: map[string]int{string(config.SeverityWarning): 1},
	}}
	assert.False(t, result.HasErrors())
	assert.True(t, result.HasWarnings())
	assert.True(t, result.HasIssues())
}
