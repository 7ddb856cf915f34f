package treesitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/parser/treesitter"
	"github.com/yaklabco/goslang/pkg/tree"
)

const jsSample = `import { readFile } from "fs";

class Store {
  #items = [];
  constructor(name) { this.name = name; }
  get size() { return this.#items.length; }
  static create() { return new Store("default"); }
  #reset() { this.#items = []; }
}

function process(list, limit = 10) {
  let total = 0;
  for (const item of list) {
    if (item > limit) {
      total += item;
    } else if (item < 0) {
      continue;
    }
  }
  const label = total > 100 ? "big" : "small";
  try {
    readFile(label);
  } catch (e) {
    throw e;
  }
  return ` + "`total: ${total}`" + `;
}
`

func TestJavaScriptConverter_Parse(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewJavaScript()
	t.Cleanup(converter.Terminate)
	file := parse(t, converter, jsSample)

	assert.Equal(t, "javascript", file.Language)
	assert.Empty(t, tree.Validate(file.Root))

	t.Run("class members", func(t *testing.T) {
		t.Parallel()
		classes := tree.FindAll[*tree.ClassDeclarationTree](file.Root)
		require.Len(t, classes, 1)
		assert.Equal(t, "Store", classes[0].Identifier.Name)

		assert.True(t, functionNamed(t, file.Root, "constructor").IsConstructor)
		assert.True(t, functionNamed(t, file.Root, "create").HasModifier(tree.ModifierStatic))
		assert.True(t, functionNamed(t, file.Root, "#reset").HasModifier(tree.ModifierPrivate))
		assert.False(t, functionNamed(t, file.Root, "size").HasModifier(tree.ModifierPrivate))
	})

	t.Run("parameters", func(t *testing.T) {
		t.Parallel()
		process := functionNamed(t, file.Root, "process")
		require.Len(t, process.FormalParameters, 2)
		limit := process.FormalParameters[1].(*tree.ParameterTree)
		assert.Equal(t, "limit", limit.Identifier.Name)
		assert.IsType(t, &tree.IntegerLiteralTree{}, limit.DefaultValue)
	})

	t.Run("control flow", func(t *testing.T) {
		t.Parallel()
		loops := tree.FindAll[*tree.LoopTree](file.Root)
		require.Len(t, loops, 1)
		assert.Equal(t, tree.LoopFor, loops[0].LoopKind)

		ifs := tree.FindAll[*tree.IfTree](file.Root)
		require.Len(t, ifs, 3)
		assert.Equal(t, "else", ifs[0].ElseKeyword.Text)

		ternary := ifs[2]
		assert.Equal(t, "?", ternary.IfKeyword.Text)
		assert.Equal(t, ":", ternary.ElseKeyword.Text)

		handlers := tree.FindAll[*tree.ExceptionHandlingTree](file.Root)
		require.Len(t, handlers, 1)
		require.Len(t, handlers[0].CatchBlocks, 1)
		assert.Equal(t, "catch", handlers[0].CatchBlocks[0].Keyword.Text)
		assert.Len(t, tree.FindAll[*tree.ThrowTree](file.Root), 1)
	})

	t.Run("contextual keywords", func(t *testing.T) {
		t.Parallel()
		for _, token := range file.Provider.AllTokens() {
			switch token.Text {
			case "of", "get", "static", "from", "class", "const", "let":
				assert.Equal(t, tree.TokenKeyword, token.Kind, token.Text)
			case `"fs"`, `"big"`:
				assert.Equal(t, tree.TokenStringLiteral, token.Kind, token.Text)
			}
		}
	})
}

func TestJavaScriptConverter_ContextualWordAsName(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewJavaScript()
	t.Cleanup(converter.Terminate)
	file := parse(t, converter, "const of = 1;\nfor (const x of [of]) {}\n")

	var kinds []tree.TokenKind
	for _, token := range file.Provider.AllTokens() {
		if token.Text == "of" {
			kinds = append(kinds, token.Kind)
		}
	}
	assert.Equal(t, []tree.TokenKind{tree.TokenOther, tree.TokenKeyword, tree.TokenOther}, kinds)
}

func TestJavaScriptConverter_Decorators(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewJavaScript()
	t.Cleanup(converter.Terminate)
	file := parse(t, converter, "@Component({ selector: \"app\" })\n@ns.sealed\n@frozen\nclass App {}\n")

	annotations := file.Provider.AllAnnotations()
	require.Len(t, annotations, 3)
	assert.Equal(t, "Component", annotations[0].ShortName)
	assert.Equal(t, []string{`{ selector: "app" }`}, annotations[0].Arguments)
	assert.Equal(t, "sealed", annotations[1].ShortName)
	assert.Empty(t, annotations[1].Arguments)
	assert.Equal(t, "frozen", annotations[2].ShortName)
	assert.Empty(t, tree.Validate(file.Root))
}

func TestJavaScriptConverter_ArrowExpressionBody(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewJavaScript()
	t.Cleanup(converter.Terminate)
	file := parse(t, converter, "const twice = (x) => x * 2;\n")
	assert.Empty(t, tree.Validate(file.Root))

	functions := tree.FindAll[*tree.FunctionDeclarationTree](file.Root)
	require.Len(t, functions, 1)
	require.NotNil(t, functions[0].Body)
	require.Len(t, functions[0].Body.StatementOrExpressions, 1)
	assert.IsType(t, &tree.BinaryExpressionTree{}, functions[0].Body.StatementOrExpressions[0])
}

func TestJavaScriptConverter_ParseError(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewJavaScript()
	t.Cleanup(converter.Terminate)

	_, err := converter.Parse(t.Context(), "broken.js", []byte("function f( {\n"))
	var parseErr *tree.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Pointer)
}
