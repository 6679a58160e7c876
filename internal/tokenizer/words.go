package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordTokenizer is a regex-free word splitter. A token is a maximal run of
// letters, marks, numbers and connector punctuation; an apostrophe is kept
// when it sits between two word runes ("can't", "l’homme"). Everything else,
// including U+FFFD, is a boundary. Tokens are case-folded.
type WordTokenizer struct{}

var _ Tokenizer = WordTokenizer{}

// SimpleTokenize splits text and applies language-independent case folding.
func (WordTokenizer) SimpleTokenize(text string) []string {
	fold := cases.Fold()
	words := splitWords(text)
	for i, w := range words {
		words[i] = fold.String(w)
	}

	return words
}

// Tokenize splits text and lowercases it with the casing rules of lang, so
// Turkish "I" becomes dotless "ı". For languages written without spaces
// between words (Chinese, Japanese, Thai) every ideographic, kana or Thai
// rune becomes its own token.
func (WordTokenizer) Tokenize(text, lang string) []string {
	tag := language.Make(lang)
	lower := cases.Lower(tag)
	base, _ := tag.Base()

	words := splitWords(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = lower.String(w)
		switch base.String() {
		case "zh", "ja", "th":
			out = append(out, splitIdeographs(w)...)
		default:
			out = append(out, w)
		}
	}

	return out
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}

	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r) || unicode.Is(unicode.Pc, r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func splitWords(text string) []string {
	var words []string

	runes := []rune(text)
	start := -1
	for i, r := range runes {
		inWord := isWordRune(r)
		if !inWord && isApostrophe(r) && start >= 0 && i+1 < len(runes) && isWordRune(runes[i+1]) {
			inWord = true
		}

		switch {
		case inWord && start < 0:
			start = i
		case !inWord && start >= 0:
			words = append(words, string(runes[start:i]))
			start = -1
		}
	}

	if start >= 0 {
		words = append(words, string(runes[start:]))
	}

	return words
}

func isIdeographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Thai)
}

// splitIdeographs keeps non-ideographic runs together and emits each
// ideographic rune on its own.
func splitIdeographs(word string) []string {
	var (
		out []string
		run strings.Builder
	)

	for _, r := range word {
		if !isIdeographic(r) {
			run.WriteRune(r)
			continue
		}

		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}

		out = append(out, string(r))
	}

	if run.Len() > 0 {
		out = append(out, run.String())
	}

	return out
}
