package wordfreq

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/example/go-wordfreq-builder/internal/text"
	"github.com/example/go-wordfreq-builder/internal/tokenizer"
)

// ReadOptions controls ReadFreqs.
type ReadOptions struct {
	// Cutoff stops the scan at the first row whose weight is below it.
	// A nonzero cutoff requires the file to be sorted by weight in
	// descending order; this is not checked, and an unsorted file is
	// silently truncated.
	Cutoff float64
	// Lang selects language-aware tokenization. Empty means
	// SimpleTokenize.
	Lang string

	Tokenizer tokenizer.Tokenizer
	Repairer  text.Repairer
}

func (o ReadOptions) tokenize(key string) []string {
	tok := o.Tokenizer
	if tok == nil {
		tok = tokenizer.Default()
	}

	if o.Lang != "" {
		return tok.Tokenize(key, o.Lang)
	}

	return tok.SimpleTokenize(key)
}

func (o ReadOptions) repairer() text.Repairer {
	if o.Repairer == nil {
		return text.DefaultRepairer()
	}

	return o.Repairer
}

// ReadFreqs reads a headerless "token,weight" CSV file and returns the
// normalized frequency of every token.
//
// Each key is tokenized and every resulting token receives the full row
// weight, which is also added to the grand total once per token. Weights
// of duplicate tokens are summed, so concatenated files merge correctly.
// The grand total must be positive; otherwise ErrDomain is returned.
func ReadFreqs(path string, opts ReadOptions) (Freqs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordfreq: open word list: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	repair := opts.repairer()
	raw := make(Freqs)
	total := 0.0

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("wordfreq: read %s: %w", path, err)
		}

		val, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("wordfreq: %s line %d: weight %q: %w", path, line, record[1], err)
		}

		if math.IsNaN(val) || math.IsInf(val, 0) {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("%w: %s line %d: weight %v", ErrDomain, path, line, val)
		}

		if val < 0 {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("%w: %s line %d: negative weight %v", ErrDomain, path, line, val)
		}

		if val < opts.Cutoff {
			break
		}

		// Zero-weight rows carry no frequency; an entry would quantize to -Inf.
		if val == 0 {
			continue
		}

		for _, token := range opts.tokenize(record[0]) {
			raw[repair.Repair(token)] += val
			total += val
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: %s has zero total weight", ErrDomain, path)
	}

	for token := range raw {
		raw[token] /= total
	}

	return raw, nil
}

// ReadAndMerge reads every path with ReadFreqs and averages the results
// with MergeFreqs.
func ReadAndMerge(paths []string, opts ReadOptions) (Freqs, error) {
	sources := make([]Freqs, 0, len(paths))
	for _, path := range paths {
		freqs, err := ReadFreqs(path, opts)
		if err != nil {
			return nil, err
		}

		sources = append(sources, freqs)
	}

	return MergeFreqs(sources...), nil
}
