// Package wordfreq builds word-frequency tables: raw token counts from text
// corpora, normalized frequencies from CSV word lists, averages over several
// sources, and CSV word lists written back out.
//
// Every operation is a whole-file batch transformation. Maps returned by
// this package belong to the caller; functions that take maps never mutate
// them.
package wordfreq

import "errors"

// ErrDomain marks a mathematically undefined result, such as normalizing a
// table whose total weight is zero. It is never recovered from internally.
var ErrDomain = errors.New("wordfreq: undefined frequency")

// Counts maps a token to the number of times it was seen.
type Counts map[string]int

// Freqs maps a token to its weight. After ReadFreqs or MergeFreqs the
// weights sum to 1.
type Freqs map[string]float64

// Weight is the value type of a table the word-list writer accepts.
type Weight interface {
	~int | ~int64 | ~float64
}

// Total returns the sum of all weights in f.
func (f Freqs) Total() float64 {
	var total float64
	for _, v := range f {
		total += v
	}

	return total
}
