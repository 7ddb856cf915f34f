package metrics

import (
	"strings"

	"github.com/yaklabco/goslang/pkg/tree"
	"github.com/yaklabco/goslang/pkg/visit"
)

// FileMetrics holds the size and complexity measures of one file.
type FileMetrics struct {
	LinesOfCode         int `json:"ncloc"`
	CommentLines        int `json:"commentLines"`
	Functions           int `json:"functions"`
	Classes             int `json:"classes"`
	Statements          int `json:"statements"`
	Complexity          int `json:"complexity"`
	CognitiveComplexity int `json:"cognitiveComplexity"`
}

// Add accumulates other into m.
func (m *FileMetrics) Add(other FileMetrics) {
	m.LinesOfCode += other.LinesOfCode
	m.CommentLines += other.CommentLines
	m.Functions += other.Functions
	m.Classes += other.Classes
	m.Statements += other.Statements
	m.Complexity += other.Complexity
	m.CognitiveComplexity += other.CognitiveComplexity
}

// Compute measures file. A file without a tree has zero metrics.
func Compute(file *tree.File) FileMetrics {
	if file == nil || file.Root == nil {
		return FileMetrics{}
	}

	m := FileMetrics{
		LinesOfCode:         len(tokenLines(file.Provider)),
		CommentLines:        len(commentLines(file.Provider)),
		Complexity:          len(CyclomaticComplexity(file.Root)),
		CognitiveComplexity: NewCognitiveComplexity(file.Root).Value(),
	}

	v := visit.NewVisitor()
	visit.On(v, func(_ *visit.Context, t *tree.FunctionDeclarationTree) {
		if t.Name != nil && t.Body != nil {
			m.Functions++
		}
	})
	visit.On(v, func(_ *visit.Context, _ *tree.ClassDeclarationTree) {
		m.Classes++
	})
	visit.On(v, func(_ *visit.Context, t *tree.BlockTree) {
		m.Statements += countStatements(t.StatementOrExpressions)
	})
	visit.On(v, func(_ *visit.Context, t *tree.TopLevelTree) {
		m.Statements += countStatements(t.Declarations)
	})
	v.Scan(visit.NewContext(), file.Root)

	return m
}

func countStatements(trees []tree.Tree) int {
	count := 0
	for _, t := range trees {
		switch t.(type) {
		case *tree.BlockTree, *tree.FunctionDeclarationTree, *tree.ClassDeclarationTree,
			*tree.PackageDeclarationTree, *tree.ImportDeclarationTree:
		default:
			count++
		}
	}
	return count
}

func tokenLines(provider *tree.MetaDataProvider) map[int]struct{} {
	lines := make(map[int]struct{})
	if provider == nil {
		return lines
	}
	for _, token := range provider.AllTokens() {
		for line := token.Range.Start.Line; line <= token.Range.End.Line; line++ {
			lines[line] = struct{}{}
		}
	}
	return lines
}

// commentLines returns the lines holding non-blank comment content.
func commentLines(provider *tree.MetaDataProvider) map[int]struct{} {
	lines := make(map[int]struct{})
	if provider == nil {
		return lines
	}
	for _, comment := range provider.AllComments() {
		for i, line := range strings.Split(comment.Content, "\n") {
			if strings.TrimSpace(line) != "" {
				lines[comment.ContentRange.Start.Line+i] = struct{}{}
			}
		}
	}
	return lines
}
