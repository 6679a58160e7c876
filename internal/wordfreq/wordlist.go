package wordfreq

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// DefaultWordlistCutoff is the smallest value WriteWordlist writes unless
// told otherwise.
const DefaultWordlistCutoff = 1e-8

type entry[V Weight] struct {
	token string
	value V
}

// WriteWordlist writes a count or frequency table to path as headerless
// "token,value" CSV, highest value first. Ties are ordered by token.
//
// Writing stops at the first value below cutoff. Tokens containing a comma
// or a double quote are skipped rather than escaped, which keeps the output
// trivially parseable. Lines always end in "\n".
func WriteWordlist[V Weight](freqs map[string]V, path string, cutoff float64) (err error) {
	entries := make([]entry[V], 0, len(freqs))
	for token, v := range freqs {
		entries = append(entries, entry[V]{token: token, value: v})
	}

	slices.SortFunc(entries, func(a, b entry[V]) int {
		if c := cmp.Compare(b.value, a.value); c != 0 {
			return c
		}

		return strings.Compare(a.token, b.token)
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wordfreq: create word list: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wordfreq: close %s: %w", path, cerr)
		}
	}()

	cw := csv.NewWriter(f)
	cw.UseCRLF = false

	for _, e := range entries {
		if float64(e.value) < cutoff {
			break
		}

		if strings.ContainsAny(e.token, `,"`) {
			continue
		}

		if err := cw.Write([]string{e.token, formatWeight(e.value)}); err != nil {
			return fmt.Errorf("wordfreq: write %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("wordfreq: write %s: %w", path, err)
	}

	return nil
}

func formatWeight[V Weight](v V) string {
	switch w := any(v).(type) {
	case float64:
		return strconv.FormatFloat(w, 'g', -1, 64)
	case int:
		return strconv.Itoa(w)
	case int64:
		return strconv.FormatInt(w, 10)
	}

	// Named types over the Weight constraint.
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}
