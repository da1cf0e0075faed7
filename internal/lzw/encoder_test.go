package lzw

import (
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/lzw-trie/internal/trie"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func randomText(n int, alphabet string, seed uint64) string {
	r := rand.New(rand.NewPCG(seed, seed+1))
	symbols := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = symbols[r.IntN(len(symbols))]
	}
	return string(out)
}

func codeValues(codes []Code) []uint32 {
	values := make([]uint32, len(codes))
	for i, c := range codes {
		values[i] = c.Value
	}
	return values
}

func newTestEncoder(t *testing.T, spec Spec, alphabet Alphabet) (*Encoder[rune], *Metrics) {
	t.Helper()

	d, err := NewDictionary(spec, alphabet.Symbols())
	require.NoError(t, err)

	metrics := NewMetrics(prometheus.NewRegistry())
	return NewEncoder(d, metrics), metrics
}

func TestEncoder_ClassicTrace(t *testing.T) {
	enc, metrics := newTestEncoder(t, lowercaseSpec(), AlphabetLowercase)

	codes, err := enc.EncodeValues([]rune("tobeornottobeortobeornot"))
	require.NoError(t, err)

	assert.Equal(t,
		[]uint32{19, 14, 1, 4, 14, 17, 13, 14, 19, 26, 28, 30, 35, 29, 31, 33},
		codeValues(codes))
	assert.Equal(t, float64(16), testutil.ToFloat64(metrics.CodesEmitted))
	assert.Equal(t, float64(15), testutil.ToFloat64(metrics.EntriesAdded))
	assert.Equal(t, float64(12), testutil.ToFloat64(metrics.CodeWidth))
	assert.Equal(t, uint32(41), enc.Dictionary().NextCode())
}

func TestEncoder_EndCode(t *testing.T) {
	enc, _ := newTestEncoder(t, DefaultSpec(), AlphabetLowercase)

	codes, err := enc.EncodeValues([]rune("abab"))
	require.NoError(t, err)

	end, _ := enc.Dictionary().EndCode()
	// a, b, ab, End
	assert.Equal(t, []uint32{0, 1, 28, end.Value}, codeValues(codes))
}

func TestEncoder_EmptyInput(t *testing.T) {
	enc, _ := newTestEncoder(t, lowercaseSpec(), AlphabetLowercase)

	codes, err := enc.EncodeValues(nil)
	require.NoError(t, err)
	assert.Empty(t, codes)

	enc, _ = newTestEncoder(t, DefaultSpec(), AlphabetLowercase)
	codes, err = enc.EncodeValues(nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{27}, codeValues(codes), "only the End code")
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	enc, _ := newTestEncoder(t, lowercaseSpec(), AlphabetLowercase)

	codes, err := enc.EncodeValues([]rune("abZ"))
	assert.ErrorIs(t, err, trie.ErrUnknownSymbol)
	assert.Equal(t, []uint32{0, 1}, codeValues(codes))
}

func TestEncoder_FreezesWithoutClearCode(t *testing.T) {
	spec := Spec{Width: 5}
	enc, metrics := newTestEncoder(t, spec, AlphabetLowercase)
	input := randomText(500, "abcd", 7)

	codes, err := enc.EncodeValues([]rune(input))
	require.NoError(t, err)

	assert.True(t, enc.Dictionary().Frozen())
	assert.Equal(t, 32, enc.Dictionary().Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Freezes))
	assert.Equal(t, float64(6), testutil.ToFloat64(metrics.EntriesAdded))

	decoded, err := Decode(spec, AlphabetLowercase.Symbols(), codes)
	require.NoError(t, err)
	assert.Equal(t, input, string(decoded))
}

func TestEncoder_ClearsWithClearCode(t *testing.T) {
	spec := Spec{Width: 6, ClearCode: true, EndCode: true}
	enc, metrics := newTestEncoder(t, spec, AlphabetLowercase)
	input := randomText(2000, "abcdef", 11)

	codes, err := enc.EncodeValues([]rune(input))
	require.NoError(t, err)

	clearCode, _ := enc.Dictionary().ClearCode()
	assert.Contains(t, codeValues(codes), clearCode.Value)
	assert.Greater(t, testutil.ToFloat64(metrics.Resets), float64(0))
	assert.False(t, enc.Dictionary().Frozen())

	decoded, err := Decode(spec, AlphabetLowercase.Symbols(), codes)
	require.NoError(t, err)
	assert.Equal(t, input, string(decoded))
}

func TestEncoder_CodesKeepAllocationWidth(t *testing.T) {
	spec := Spec{Width: 5, VariableWidth: true, MaxWidth: 6, ClearCode: true, EndCode: true}
	enc, _ := newTestEncoder(t, spec, AlphabetLowercase)

	codes, err := enc.EncodeValues([]rune(randomText(2000, "abcdef", 11)))
	require.NoError(t, err)

	clearCode, _ := enc.Dictionary().ClearCode()
	first := slices.Index(codeValues(codes), clearCode.Value)
	require.Positive(t, first)

	// the Clear code was seeded at the starting width, while codes emitted
	// before it already used the widened code space
	assert.Equal(t, Code{Value: clearCode.Value, Width: 5}, codes[first])
	assert.True(t, slices.ContainsFunc(codes[:first], func(c Code) bool { return c.Width == 6 }))
}

func TestEncoder_VariableWidth(t *testing.T) {
	spec := Spec{Width: 9, VariableWidth: true, MaxWidth: 10, ClearCode: true, EndCode: true}
	enc, metrics := newTestEncoder(t, spec, AlphabetLatin1)
	input := randomText(20000, "abcdefgh", 3)

	codes, err := enc.EncodeValues([]rune(input))
	require.NoError(t, err)

	widths := map[uint8]bool{}
	for _, c := range codes {
		widths[c.Width] = true
		assert.Less(t, c.Value, uint32(1)<<c.Width)
	}
	assert.Equal(t, map[uint8]bool{9: true, 10: true}, widths)
	assert.Greater(t, testutil.ToFloat64(metrics.Resets), float64(0))

	decoded, err := Decode(spec, AlphabetLatin1.Symbols(), codes)
	require.NoError(t, err)
	assert.Equal(t, input, string(decoded))
}

func TestEncoder_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		alphabet Alphabet
		input    string
	}{
		{name: "classic", spec: lowercaseSpec(), alphabet: AlphabetLowercase, input: "tobeornottobeortobeornot"},
		{name: "repeated pair", spec: DefaultSpec(), alphabet: AlphabetLowercase, input: "abababababababab"},
		{name: "single symbol run", spec: DefaultSpec(), alphabet: AlphabetLowercase, input: strings.Repeat("a", 100)},
		{name: "single symbol", spec: DefaultSpec(), alphabet: AlphabetLowercase, input: "q"},
		{name: "printable text", spec: DefaultSpec(), alphabet: AlphabetASCII, input: "TOBEORNOTTOBEORTOBEORNOT #1, to be or not to be!"},
		{name: "latin1 text", spec: DefaultSpec(), alphabet: AlphabetLatin1, input: "naïve café\nnaïve café\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, metrics := newTestEncoder(t, tt.spec, tt.alphabet)

			codes, err := enc.EncodeValues([]rune(tt.input))
			require.NoError(t, err)
			assert.LessOrEqual(t, testutil.ToFloat64(metrics.EntriesAdded), float64(len([]rune(tt.input))))

			decoded, err := Decode(tt.spec, tt.alphabet.Symbols(), codes)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(decoded))
		})
	}
}

func TestEncoder_RuneStream(t *testing.T) {
	input := "tobeornottobeortobeornot"

	fromSlice, _ := newTestEncoder(t, DefaultSpec(), AlphabetLowercase)
	want, err := fromSlice.EncodeValues([]rune(input))
	require.NoError(t, err)

	fromReader, _ := newTestEncoder(t, DefaultSpec(), AlphabetLowercase)
	got, err := fromReader.Encode(Values[rune](trie.NewRuneCursor(strings.NewReader(input))))
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

type brokenReader struct {
	data []rune
}

func (r *brokenReader) ReadRune() (rune, int, error) {
	if len(r.data) == 0 {
		return 0, 0, assert.AnError
	}
	ch := r.data[0]
	r.data = r.data[1:]
	return ch, 1, nil
}

func TestEncoder_ReadError(t *testing.T) {
	enc, _ := newTestEncoder(t, DefaultSpec(), AlphabetLowercase)

	_, err := enc.Encode(Values[rune](trie.NewRuneCursor(&brokenReader{data: []rune("abc")})))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMetrics_Nil(t *testing.T) {
	d, err := NewDictionary(lowercaseSpec(), AlphabetLowercase.Symbols())
	require.NoError(t, err)

	codes, err := NewEncoder(d, nil).EncodeValues([]rune("abab"))
	require.NoError(t, err)
	assert.Len(t, codes, 3)
}
