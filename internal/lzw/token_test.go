package lzw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	assert.Equal(t, Clear[rune](), Clear[rune]())
	assert.NotEqual(t, Clear[rune](), End[rune]())
	assert.NotEqual(t, Value[rune](0), Clear[rune](), "control tokens never collide with zero values")

	assert.True(t, End[string]().IsControl())
	assert.False(t, Value("x").IsControl())

	assert.Equal(t, "<clear>", Clear[int]().String())
	assert.Equal(t, "<end>", End[int]().String())
	assert.Equal(t, "42", Value(42).String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []Token[rune]{Value('a'), Value('b')}, Tokens([]rune("ab")))
	assert.Empty(t, Tokens[rune](nil))
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name string
		want Alphabet
		size int
	}{
		{name: "ascii", want: AlphabetASCII, size: 95},
		{name: " Lowercase ", want: AlphabetLowercase, size: 26},
		{name: "LATIN1", want: AlphabetLatin1, size: 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAlphabet(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
			assert.Len(t, a.Symbols(), tt.size)
		})
	}

	_, err := ParseAlphabet("klingon")
	assert.ErrorIs(t, err, ErrUnknownAlphabet)
	assert.Nil(t, Alphabet("klingon").Symbols())
}
