// Package text holds the text plumbing shared by the word-frequency
// pipeline: lossy UTF-8 decoding of corpus files and token repair.
package text

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewLossyReader wraps r so that every invalid UTF-8 sequence is replaced
// with U+FFFD instead of failing the read. The tokenizer treats U+FFFD as a
// word boundary, so malformed input splits tokens rather than aborting.
func NewLossyReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8.NewDecoder())
}
