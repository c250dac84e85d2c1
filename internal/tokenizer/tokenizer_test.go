package tokenizer

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("C++, 'functional' programming -- in FUNCTIONAL style! don't")
	assert.Equal(t, []string{"c", "functional", "programming", "in", "functional", "style", "don't"}, tokens)
}

func TestTokenizeDropsEmptyTokens(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize("!!!???"))
	assert.Empty(t, Tokenize("'' ''' '"))
}

func TestTokenizeUnicode(t *testing.T) {
	assert.Equal(t, []string{"straße", "über", "ĳssel"}, Tokenize("Straße—ÜBER ĳssel"))
}

func TestTrimApostrophes(t *testing.T) {
	assert.Equal(t, "rock'n'roll", TrimApostrophes("''rock'n'roll'"))
	assert.Equal(t, "", TrimApostrophes("''''''''''"))
	assert.Equal(t, "", TrimApostrophes(""))
	assert.Equal(t, "abc", TrimApostrophes("abc"))
}

func TestTokensAreWellFormed(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1))
	for i := 0; i < 20; i++ {
		for _, token := range Tokenize(randomText(rnd, 200)) {
			require.NotEmpty(t, token)
			assert.False(t, strings.HasPrefix(token, "'") || strings.HasSuffix(token, "'"), token)
			for _, r := range token {
				assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'', token)
				assert.False(t, unicode.IsUpper(r), token)
			}
		}
	}
}

func TestParallelTokenizeMatchesSequential(t *testing.T) {
	texts := []string{
		"",
		" ",
		"x",
		"!!!???",
		"Parallel123Test'Example'",
		"VeryVeryVeryLongSingleWord",
		"Parallel tokenization should match single-threaded tokenization exactly.",
		"ab cd",
		"ünïcödé wörds ärë fïnë",
		"\xff\xfe broken \xc3 utf8",
	}
	rnd := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 20; i++ {
		texts = append(texts, randomText(rnd, 100+rnd.IntN(1000)))
	}
	for _, text := range texts {
		par, err := ParallelTokenize(text)
		require.NoError(t, err)
		assert.Equal(t, Tokenize(text), par, "text %q", text)
	}
}

func TestSplitPoint(t *testing.T) {
	at, ok := splitPoint("hello world")
	require.True(t, ok)
	assert.Equal(t, 5, at)
	_, ok = splitPoint("unbroken")
	assert.False(t, ok)
	at, ok = splitPoint("abcdefgh ij")
	require.True(t, ok, "scans forward if nothing found before the middle")
	assert.Equal(t, 8, at)
}

func randomText(rnd *rand.Rand, n int) string {
	const characters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789'.,!? äöü"
	runes := []rune(characters)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(runes[rnd.IntN(len(runes))])
	}
	return sb.String()
}
