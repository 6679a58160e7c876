package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/go-wordfreq-builder/internal/text"
	"github.com/example/go-wordfreq-builder/internal/tokenizer"
)

// CountTokens counts the tokens in a text file, running each line through
// tok.SimpleTokenize. A nil tok uses tokenizer.Default().
//
// Invalid UTF-8 in the file becomes a token boundary and never fails the
// read. Tokens are not repaired here; that happens when the counts are
// re-read as a word list.
func CountTokens(path string, tok tokenizer.Tokenizer) (Counts, error) {
	if tok == nil {
		tok = tokenizer.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordfreq: open corpus: %w", err)
	}
	defer f.Close()

	counts := make(Counts)
	r := bufio.NewReader(text.NewLossyReader(f))
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			for _, token := range tok.SimpleTokenize(line) {
				counts[token]++
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("wordfreq: read corpus %s: %w", path, err)
		}
	}

	return counts, nil
}
