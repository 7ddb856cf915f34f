package tree

import "strings"

// File is the converted form of one source file: its text, the root of
// its tree and the metadata index the tree was built on.
type File struct {
	Path     string
	Language string
	Content  string
	Root     *TopLevelTree
	Provider *MetaDataProvider

	lines []string
}

// NewFile returns a converted file.
func NewFile(path, language, content string, root *TopLevelTree, provider *MetaDataProvider) *File {
	return &File{
		Path:     path,
		Language: language,
		Content:  content,
		Root:     root,
		Provider: provider,
	}
}

// Lines returns the text lines of the file without line terminators.
func (f *File) Lines() []string {
	if f.lines == nil {
		f.lines = SplitLines(f.Content)
	}
	return f.lines
}

// Line returns the 1-based line n, or "" when out of range.
func (f *File) Line(n int) string {
	lines := f.Lines()
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// SplitLines splits text on "\n", "\r\n" and "\r". A trailing terminator
// does not start an extra line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}
