// Package tokenizer splits text into normalized words.
//
// Text is lower-cased, every rune other than a letter, a digit or an apostrophe
// separates words, and leading and trailing apostrophes are removed from each word.
// Words which end up empty are dropped.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/fpsort"
	"golang.org/x/sync/errgroup"
)

var tokenize = fpsort.Compose(split, clean)

// Tokenize breaks text into a slice of lower-cased words.
func Tokenize(text string) []string {
	return tokenize(text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func split(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func clean(words []string) []string {
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if t := TrimApostrophes(w); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// TrimApostrophes removes leading and trailing apostrophes from word.
func TrimApostrophes(word string) string {
	return strings.Trim(word, "'")
}

// ParallelTokenize tokenizes the two halves of text concurrently. The result is
// identical to Tokenize(text).
//
// Text is split at a separator rune close to the middle, so no word is cut in two.
// Text without any separator is a single word and is tokenized sequentially.
func ParallelTokenize(text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}
	if utf8.RuneCountInString(text) < 2 {
		return Tokenize(text), nil
	}
	mid, ok := splitPoint(text)
	if !ok {
		return Tokenize(text), nil
	}
	var halves [2][]string
	var g errgroup.Group
	g.Go(func() error {
		halves[0] = Tokenize(text[:mid])
		return nil
	})
	g.Go(func() error {
		halves[1] = Tokenize(text[mid:])
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(halves[0], halves[1]...), nil
}

// splitPoint finds the byte offset of a separator rune near the middle of text.
// It scans backwards from the middle first, then forwards.
func splitPoint(text string) (int, bool) {
	mid := len(text) / 2
	for mid > 0 && !utf8.RuneStart(text[mid]) {
		mid--
	}
	for i := mid; i > 0; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
		if !isWordRune(r) {
			return i, true
		}
	}
	for i := mid; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			return i, true
		}
		i += size
	}
	return 0, false
}
