// Package langdetect decides which guest language a source file is written
// in. It uses go-enry for extension, shebang and classifier lookups and
// only answers with languages a converter exists for.
package langdetect

import (
	"bytes"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Guest language names, as used by converters and configuration.
const (
	Go         = "go"
	JavaScript = "javascript"
)

// enryNames maps go-enry language names to guest language names.
//
//nolint:gochecknoglobals // Read-only lookup table
var enryNames = map[string]string{
	"Go":         Go,
	"JavaScript": JavaScript,
}

// Supported returns the guest languages, sorted.
func Supported() []string {
	languages := make([]string, 0, len(enryNames))
	for _, name := range enryNames {
		languages = append(languages, name)
	}
	slices.Sort(languages)
	return languages
}

// IsSupported reports whether language is a guest language.
func IsSupported(language string) bool {
	return slices.Contains(Supported(), language)
}

// ForFile returns the guest language of the file at path, or "" when the
// file is not written in one. The extension decides when it is known;
// extensionless files are recognised by shebang and then by content.
func ForFile(path string, content []byte) string {
	if filepath.Ext(path) != "" {
		language, _ := enry.GetLanguageByExtension(path)
		return normalize(language)
	}
	return Detect(content)
}

// Detect returns the guest language of content, or "" when detection
// fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Strategy 1: Check shebang first (most reliable).
	if language, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(language)
	}

	// Strategy 2: Language-specific patterns.
	if language := detectByPattern(content); language != "" {
		return language
	}

	// Strategy 3: Classifier restricted to the guest languages.
	if language, safe := enry.GetLanguageByClassifier(content, []string{"Go", "JavaScript"}); safe {
		return normalize(language)
	}

	return ""
}

// IsVendored reports whether path is third-party code that is not
// analyzed, such as vendor/ or node_modules/.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// goGeneratedHeader is the marker line of generated Go files.
//
//nolint:gochecknoglobals // Compiled once
var goGeneratedHeader = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// IsGenerated reports whether the file is generated code.
func IsGenerated(path string, content []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".go") && goGeneratedHeader.Match(content) {
		return true
	}
	return enry.IsGenerated(path, content)
}

// detectByPattern checks for patterns that are highly indicative.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("package ")) || bytes.Contains(content, []byte("\npackage ")) {
		return Go
	}

	text := string(content)
	if strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") && strings.Contains(text, ";") ||
		strings.Contains(text, "let ") ||
		strings.Contains(text, "console.log") ||
		strings.Contains(text, "require(") {
		return JavaScript
	}
	return ""
}

// normalize converts go-enry language names to guest language names.
func normalize(language string) string {
	return enryNames[language]
}
