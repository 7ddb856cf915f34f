package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTokenProvider() *MetaDataProvider {
	return NewMetaDataProvider(nil, []*Token{
		NewToken(Range(1, 1, 1, 3), "ab", TokenOther),
		NewToken(Range(1, 4, 1, 6), "cd", TokenOther),
	}, nil)
}

func TestMetaDataProvider_IndexOfFirstToken(t *testing.T) {
	t.Parallel()

	provider := twoTokenProvider()

	tests := []struct {
		name      string
		textRange TextRange
		want      int
	}{
		{"straddling first token", Range(1, 2, 1, 3), 0},
		{"first contained token", Range(1, 2, 1, 6), 1},
		{"whole file", Range(1, 1, 1, 6), 0},
		{"between tokens", Range(1, 3, 1, 4), -1},
		{"after last token", Range(2, 1, 2, 5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, provider.IndexOfFirstToken(tt.textRange))
		})
	}
}

func TestMetaDataProvider_FirstAndPreviousToken(t *testing.T) {
	t.Parallel()

	provider := twoTokenProvider()

	first := provider.FirstToken(Range(1, 4, 1, 6))
	require.NotNil(t, first)
	assert.Equal(t, "cd", first.Text)

	previous := provider.PreviousToken(Range(1, 4, 1, 6))
	require.NotNil(t, previous)
	assert.Equal(t, "ab", previous.Text)

	assert.Nil(t, provider.PreviousToken(Range(1, 1, 1, 3)))
	assert.NotNil(t, provider.PreviousTokenWithText(Range(1, 4, 1, 6), "ab"))
	assert.Nil(t, provider.PreviousTokenWithText(Range(1, 4, 1, 6), "zz"))
	assert.Nil(t, provider.FirstToken(Range(3, 1, 3, 2)))
}

func TestMetaDataProvider_TokensAndComments(t *testing.T) {
	t.Parallel()

	comment := NewComment("// note", " note", Range(1, 7, 1, 14), Range(1, 9, 1, 14))
	provider := NewMetaDataProvider(
		[]*Comment{comment},
		[]*Token{
			NewToken(Range(1, 4, 1, 6), "cd", TokenOther),
			NewToken(Range(1, 1, 1, 3), "ab", TokenOther),
		},
		nil,
	)

	meta := provider.MetaData(Range(1, 1, 1, 14))
	tokens := meta.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, "ab", tokens[0].Text, "tokens are sorted by start")
	assert.Equal(t, []*Comment{comment}, meta.Comments())

	assert.Empty(t, provider.MetaData(Range(1, 2, 1, 5)).Tokens())
	assert.Empty(t, provider.CommentsInside(Range(1, 1, 1, 10)))
	assert.Len(t, provider.AllTokens(), 2)
}

func TestMetaDataProvider_Keyword(t *testing.T) {
	t.Parallel()

	provider := NewMetaDataProvider(nil, []*Token{
		NewToken(Range(1, 1, 1, 3), "if", TokenKeyword),
		NewToken(Range(1, 4, 1, 5), "a", TokenOther),
		NewToken(Range(1, 6, 1, 10), "else", TokenKeyword),
	}, nil)

	keyword, err := provider.Keyword(Range(1, 1, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, "if", keyword.Text)

	_, err = provider.Keyword(Range(1, 1, 1, 10))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = provider.Keyword(Range(1, 4, 1, 5))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMetaDataProvider_UpdateTokenType(t *testing.T) {
	t.Parallel()

	provider := twoTokenProvider()
	meta := provider.MetaData(Range(1, 1, 1, 6))
	before := meta.Tokens()
	require.Len(t, before, 2)

	updated, err := provider.UpdateTokenType(before[1], TokenKeyword)
	require.NoError(t, err)
	assert.Equal(t, TokenKeyword, updated.Kind)
	assert.Equal(t, TokenOther, before[1].Kind, "original token is not mutated")

	after := meta.Tokens()
	assert.Same(t, updated, after[1])

	keyword, err := provider.Keyword(Range(1, 1, 1, 6))
	require.NoError(t, err)
	assert.Same(t, updated, keyword)
}

func TestMetaDataProvider_UpdateTokenType_Errors(t *testing.T) {
	t.Parallel()

	provider := twoTokenProvider()

	_, err := provider.UpdateTokenType(nil, TokenKeyword)
	require.ErrorIs(t, err, ErrInvalidArgument)

	lookalike := NewToken(Range(1, 1, 1, 3), "ab", TokenOther)
	_, err = provider.UpdateTokenType(lookalike, TokenKeyword)
	require.ErrorIs(t, err, ErrInvalidArgument)

	missing := NewToken(Range(4, 1, 4, 3), "zz", TokenOther)
	_, err = provider.UpdateTokenType(missing, TokenKeyword)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMetaDataProvider_AnnotationChain(t *testing.T) {
	t.Parallel()

	provider := NewMetaDataProvider(nil,
		[]*Token{
			NewToken(Range(1, 1, 1, 3), "@A", TokenOther),
			NewToken(Range(1, 4, 1, 6), "@B", TokenOther),
			NewToken(Range(1, 7, 1, 12), "class", TokenKeyword),
			NewToken(Range(1, 13, 1, 14), "C", TokenOther),
		},
		[]*Annotation{
			NewAnnotation("A", nil, Range(1, 1, 1, 3)),
			NewAnnotation("B", nil, Range(1, 4, 1, 6)),
		},
	)

	names := func(annotations []*Annotation) []string {
		result := make([]string, 0, len(annotations))
		for _, a := range annotations {
			result = append(result, a.ShortName)
		}
		return result
	}

	assert.Equal(t, []string{"A", "B"}, names(provider.MetaData(Range(1, 1, 1, 14)).Annotations()))
	assert.Equal(t, []string{"B"}, names(provider.MetaData(Range(1, 4, 1, 14)).Annotations()))
	assert.Empty(t, provider.MetaData(Range(1, 7, 1, 14)).Annotations())
	assert.Empty(t, provider.AnnotationsStartingAt(Range(1, 2, 1, 14)))
}

func TestMetaData_LinesOfCode(t *testing.T) {
	t.Parallel()

	provider := NewMetaDataProvider(nil, []*Token{
		NewToken(Range(1, 1, 1, 4), "foo", TokenOther),
		NewToken(Range(3, 1, 4, 2), "`a\nb`", TokenStringLiteral),
		NewToken(Range(3, 5, 3, 6), ";", TokenOther),
	}, nil)

	assert.Equal(t, []int{1, 3, 4}, provider.MetaData(Range(1, 1, 4, 2)).LinesOfCode())
	assert.Equal(t, []int{1}, provider.MetaData(Range(1, 1, 2, 1)).LinesOfCode())
}

func TestMetaData_Nil(t *testing.T) {
	t.Parallel()

	var meta *MetaData
	assert.Equal(t, TextRange{}, meta.TextRange())
	assert.Nil(t, meta.Tokens())
	assert.Nil(t, meta.Comments())
	assert.Nil(t, meta.Annotations())
	assert.Nil(t, meta.LinesOfCode())
}
