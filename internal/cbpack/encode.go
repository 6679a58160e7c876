package cbpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/example/go-wordfreq-builder/internal/text"
	"github.com/example/go-wordfreq-builder/internal/tokenizer"
	"github.com/example/go-wordfreq-builder/internal/wordfreq"
)

// Encode writes p to w as gzip-compressed MessagePack.
func Encode(w io.Writer, p Pack) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("cbpack: open gzip writer: %w", err)
	}

	enc := msgpack.NewEncoder(zw)
	if err := enc.EncodeArrayLen(len(p.Buckets) + 1); err != nil {
		return fmt.Errorf("cbpack: encode: %w", err)
	}

	if err := enc.Encode(p.Header()); err != nil {
		return fmt.Errorf("cbpack: encode header: %w", err)
	}

	for i, bucket := range p.Buckets {
		if err := enc.Encode(bucket); err != nil {
			return fmt.Errorf("cbpack: encode bucket %d: %w", i, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("cbpack: flush gzip: %w", err)
	}

	return nil
}

// WriteFile encodes p into path. The data goes to a temporary file in the
// same directory that is renamed over path once complete, so a failed
// write never leaves a truncated pack behind.
func WriteFile(path string, p Pack) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cbpack-*")
	if err != nil {
		return fmt.Errorf("cbpack: create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name()) // best-effort cleanup
		}
	}()

	if err = Encode(tmp, p); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("cbpack: close %s: %w", tmp.Name(), err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("cbpack: chmod %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cbpack: write %s: %w", path, err)
	}

	return nil
}

// Options controls FreqsToCBPack.
type Options struct {
	// Cutoff in centibels; tokens at or below it are dropped.
	Cutoff int
	// Lang selects language-aware tokenization of the input keys.
	Lang string

	Tokenizer tokenizer.Tokenizer
	Repairer  text.Repairer
}

// DefaultOptions returns Options with the default -600 cB cutoff.
func DefaultOptions() Options {
	return Options{Cutoff: DefaultCutoff}
}

// FreqsToCBPack reads a "token,weight" CSV file in full and writes it to
// out as a cBpack. The read never applies a weight cutoff: dropping rows
// before normalization would shrink the total and inflate every remaining
// frequency, so the centibel cutoff is the only one applied.
func FreqsToCBPack(in, out string, opts Options) (Stats, error) {
	freqs, err := wordfreq.ReadFreqs(in, wordfreq.ReadOptions{
		Lang:      opts.Lang,
		Tokenizer: opts.Tokenizer,
		Repairer:  opts.Repairer,
	})
	if err != nil {
		return Stats{}, err
	}

	p, err := Build(freqs, opts.Cutoff)
	if err != nil {
		return Stats{}, err
	}

	if err := WriteFile(out, p); err != nil {
		return Stats{}, err
	}

	return p.Stats(), nil
}
