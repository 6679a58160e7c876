// Package tokenizer splits text into word tokens for frequency counting.
// The word-frequency pipeline only depends on the Tokenizer interface, so
// callers can swap in a linguistic segmenter without touching the
// counting, merging or encoding code.
package tokenizer

// Tokenizer turns a run of text into tokens. Implementations must be pure:
// the same input always yields the same tokens and no state is kept
// between calls.
type Tokenizer interface {
	// SimpleTokenize splits text without any language-specific rules.
	SimpleTokenize(text string) []string
	// Tokenize splits text using the rules for the given BCP 47 language tag.
	Tokenize(text, lang string) []string
}

// Default returns the tokenizer used when a caller does not inject one.
func Default() Tokenizer {
	return WordTokenizer{}
}
