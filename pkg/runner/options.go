// Package runner provides multi-file analysis orchestration.
package runner

import "github.com/yaklabco/goslang/pkg/config"

// Options controls multi-file analysis behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Languages restricts analysis to these guest languages. Empty means
	// every language the engine supports.
	Languages []string

	// IncludeGlobs are additional doublestar patterns to include, relative
	// to WorkingDir. Empty means "include every source file".
	IncludeGlobs []string

	// ExcludeGlobs are doublestar patterns used to skip files or
	// directories. These merge ignore rules from config and CLI (e.g.
	// --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) maxFileSize() int64 {
	if o.Config == nil {
		return 0
	}
	return o.Config.MaxFileSize
}
