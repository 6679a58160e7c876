// Package cbpack encodes word frequencies in the cBpack format: tokens
// grouped into buckets of equal log frequency, stored as a gzip-compressed
// MessagePack array.
//
// The decoded structure is
//
//	[{"format": "cB", "version": 1}, bucket0, bucket1, ...]
//
// where bucket i holds, in ascending byte order, every token whose
// frequency rounds to -i centibels (hundredths of a base-10 log unit).
// Bucket 0 is therefore the most frequent; empty buckets fill gaps so a
// token's bucket index is always its negated centibel value.
package cbpack

import (
	"fmt"
	"math"
	"slices"

	"github.com/example/go-wordfreq-builder/internal/wordfreq"
)

const (
	// Format is the value of the header's "format" key.
	Format = "cB"
	// Version is the value of the header's "version" key.
	Version = 1
	// DefaultCutoff drops tokens rarer than one in a million.
	DefaultCutoff = -600
)

// Header is the first element of every cBpack file.
type Header struct {
	Format  string `msgpack:"format"`
	Version int    `msgpack:"version"`
}

// Pack is an in-memory cBpack: bucket i holds the tokens at -i centibels.
type Pack struct {
	Buckets [][]string
}

// Header returns the format descriptor written before the buckets.
func (p Pack) Header() Header {
	return Header{Format: Format, Version: Version}
}

// Stats summarizes a pack for logging.
type Stats struct {
	Buckets int
	Tokens  int
}

func (p Pack) Stats() Stats {
	s := Stats{Buckets: len(p.Buckets)}
	for _, b := range p.Buckets {
		s.Tokens += len(b)
	}

	return s
}

// Centibels quantizes a frequency to round(100 * log10(freq)), rounding
// halves to even. freq must be in (0, 1]; anything else yields ErrDomain.
func Centibels(freq float64) (int, error) {
	if !(freq > 0) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("%w: cannot quantize frequency %v", wordfreq.ErrDomain, freq)
	}

	cB := int(math.RoundToEven(100 * math.Log10(freq)))
	if cB > 0 {
		return 0, fmt.Errorf("%w: frequency %v is above 1", wordfreq.ErrDomain, freq)
	}

	return cB, nil
}

// Build quantizes freqs into buckets. Tokens at or below cutoff centibels
// are dropped, so with the default cutoff of -600 a token needs a
// frequency above 1e-6 to survive.
func Build(freqs wordfreq.Freqs, cutoff int) (Pack, error) {
	var buckets [][]string

	for token, freq := range freqs {
		cB, err := Centibels(freq)
		if err != nil {
			return Pack{}, fmt.Errorf("cbpack: token %q: %w", token, err)
		}

		if cB <= cutoff {
			continue
		}

		idx := -cB
		if idx >= len(buckets) {
			buckets = append(buckets, make([][]string, idx+1-len(buckets))...)
		}

		buckets[idx] = append(buckets[idx], token)
	}

	for i := range buckets {
		if buckets[i] == nil {
			buckets[i] = []string{}
		}

		slices.Sort(buckets[i])
	}

	return Pack{Buckets: buckets}, nil
}
