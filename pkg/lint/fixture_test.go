package lint_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
	"github.com/yaklabco/goslang/pkg/tree"
)

const wordsLanguage = "words"

// wordsConverter turns each whitespace-separated word into an identifier
// under the file root. A word containing "!" is a syntax error, and the
// word "dup" is claimed by two sibling identifiers.
type wordsConverter struct {
	terminated bool
}

func (*wordsConverter) Language() string { return wordsLanguage }

func (c *wordsConverter) Terminate() { c.terminated = true }

func (*wordsConverter) Parse(_ context.Context, path string, content []byte) (*tree.File, error) {
	var tokens []*tree.Token
	for i, line := range strings.Split(string(content), "\n") {
		offset := 0
		for _, word := range strings.Fields(line) {
			column := offset + strings.Index(line[offset:], word)
			offset = column + len(word)
			pointer := tree.NewTextPointer(i+1, column)
			if strings.Contains(word, "!") {
				return nil, tree.NewParseError(fmt.Sprintf("unexpected %q", word), &pointer)
			}
			tokens = append(tokens, tree.NewToken(tree.Range(i+1, column, i+1, offset), word, tree.TokenOther))
		}
	}

	provider := tree.NewMetaDataProvider(nil, tokens, nil)
	declarations := make([]tree.Tree, 0, len(tokens))
	for _, token := range tokens {
		ident := tree.NewIdentifierTree(provider.MetaData(token.Range), token.Text)
		declarations = append(declarations, ident)
		if token.Text == "dup" {
			declarations = append(declarations, tree.NewIdentifierTree(provider.MetaData(token.Range), token.Text))
		}
	}

	rootRange := tree.Range(1, 0, 1, 0)
	if len(tokens) > 0 {
		rootRange = tree.NewTextRange(tokens[0].Range.Start, tokens[len(tokens)-1].Range.End)
	}
	root := tree.NewTopLevelTree(provider.MetaData(rootRange), declarations, nil, nil)
	return tree.NewFile(path, wordsLanguage, string(content), root, provider), nil
}

// testCheck is a check assembled from a callback.
type testCheck struct {
	lint.BaseCheck
	enabled  bool
	severity config.Severity
	setup    func(initCtx *lint.InitContext) error
}

func newTestCheck(id, name string, setup func(initCtx *lint.InitContext) error) *testCheck {
	return &testCheck{
		BaseCheck: lint.NewBaseCheck(id, name, "test check "+name),
		enabled:   true,
		severity:  config.SeverityWarning,
		setup:     setup,
	}
}

func (c *testCheck) DefaultEnabled() bool             { return c.enabled }
func (c *testCheck) DefaultSeverity() config.Severity { return c.severity }

func (c *testCheck) Initialize(initCtx *lint.InitContext) error {
	if c.setup == nil {
		return nil
	}
	return c.setup(initCtx)
}

var errBadWord = errors.New("bad word")

// identifierCheck reports every identifier.
func identifierCheck() *testCheck {
	return newTestCheck("SL900", "every-identifier", func(initCtx *lint.InitContext) error {
		lint.Register(initCtx, func(ctx *lint.CheckContext, ident *tree.IdentifierTree) {
			ctx.ReportIssue(ident, "identifier "+ident.Name)
		})
		return nil
	})
}

// fragileCheck reports identifiers until it meets "boom" (panic) or "bad"
// (Fail).
func fragileCheck() *testCheck {
	return newTestCheck("SL901", "fragile", func(initCtx *lint.InitContext) error {
		lint.Register(initCtx, func(ctx *lint.CheckContext, ident *tree.IdentifierTree) {
			switch ident.Name {
			case "boom":
				panic("boom")
			case "bad":
				ctx.Fail(errBadWord)
				return
			}
			ctx.ReportIssue(ident, "fragile "+ident.Name)
		})
		return nil
	})
}

// parseErrorCheck reports parse failures.
func parseErrorCheck() *testCheck {
	return newTestCheck("SL902", "parse-error", func(initCtx *lint.InitContext) error {
		initCtx.OnParseError(func(ctx *lint.CheckContext, err *tree.ParseError) {
			if err.Pointer == nil {
				ctx.ReportFileIssue(err.Message)
				return
			}
			ctx.ReportIssue(tree.NewTextRange(*err.Pointer, *err.Pointer), err.Message)
		})
		return nil
	})
}

func newTestRegistry(checks ...lint.Check) *lint.Registry {
	registry := lint.NewRegistry()
	for _, check := range checks {
		registry.Register(check)
	}
	return registry
}
