// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldPosition   = "position"

	// Analysis fields.
	FieldCheck      = "check"
	FieldLanguage   = "language"
	FieldIssues     = "issues"
	FieldViolations = "violations"
	FieldPolicy     = "policy"
	FieldJobs       = "jobs"
	FieldCPD        = "cpd"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesAnalyzed   = "files_analyzed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesFailed     = "files_failed"
	FieldIssuesTotal     = "issues_total"
	FieldDuplications    = "duplications"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Check metadata fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldAliases     = "aliases"
	FieldEnabled     = "enabled"
)
