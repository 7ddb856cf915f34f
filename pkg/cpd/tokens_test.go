package cpd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/cpd"
	"github.com/yaklabco/goslang/pkg/parser/treesitter"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	converter := treesitter.NewGo()
	t.Cleanup(converter.Terminate)

	const source = `package p

import "fmt"

func f() {
	fmt.Println("hello")
}
`
	file, err := converter.Parse(context.Background(), "f.go", []byte(source))
	require.NoError(t, err)

	tokens := cpd.Tokens(file)
	require.NotEmpty(t, tokens)
	assert.Equal(t, "func", tokens[0].Image)
	assert.Equal(t, 5, tokens[0].Range.Start.Line)

	var images []string
	for _, token := range tokens {
		images = append(images, token.Image)
	}
	assert.Contains(t, images, cpd.LiteralImage)
	assert.NotContains(t, images, `"hello"`)
	assert.NotContains(t, images, `"fmt"`)
}

func TestTokens_NoTree(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cpd.Tokens(nil))
}
