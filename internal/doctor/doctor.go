// Package doctor provides preflight checks for word-list inputs.
package doctor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config holds the inputs to check.
type Config struct {
	// Wordlists are the CSV files to inspect.
	Wordlists []string
	// RequireSorted fails a word list that is not sorted by descending
	// weight. Set it when a nonzero read cutoff is in effect, because the
	// reader stops at the first row under the cutoff without checking order.
	RequireSorted bool
	// PackCutoff is the centibel cutoff the pack step will use.
	PackCutoff int
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Summary describes one scanned word list.
type Summary struct {
	Rows     int
	Total    float64
	Sorted   bool
	Unsafe   int // tokens a word-list writer would drop (comma or quote)
	FirstBad int // line of the first out-of-order row, 0 if sorted
}

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- pack cutoff -------------------------------------------------------
	if cfg.PackCutoff > 0 {
		res.fail(fmt.Sprintf("pack cutoff: %d cB is above 0", cfg.PackCutoff))
		fmt.Fprintf(w, "%s pack cutoff: %d cB is above 0\n", FailMark, cfg.PackCutoff)
	} else {
		fmt.Fprintf(w, "%s pack cutoff: %d cB (frequency > %g)\n", PassMark, cfg.PackCutoff, math.Pow(10, float64(cfg.PackCutoff)/100))
	}

	// ---- word lists --------------------------------------------------------
	for _, path := range cfg.Wordlists {
		sum, err := Scan(path)
		if err != nil {
			res.fail(fmt.Sprintf("word list %q: %v", path, err))
			fmt.Fprintf(w, "%s word list %s: %v\n", FailMark, path, err)

			continue
		}

		switch {
		case sum.Total == 0:
			res.fail(fmt.Sprintf("word list %q: total weight is zero", path))
			fmt.Fprintf(w, "%s word list %s: total weight is zero\n", FailMark, path)
		case cfg.RequireSorted && !sum.Sorted:
			res.fail(fmt.Sprintf("word list %q: not sorted by descending weight (line %d)", path, sum.FirstBad))
			fmt.Fprintf(w, "%s word list %s: not sorted by descending weight at line %d\n", FailMark, path, sum.FirstBad)
		default:
			fmt.Fprintf(w, "%s word list %s: %d rows, total weight %g, sorted=%t\n", PassMark, path, sum.Rows, sum.Total, sum.Sorted)
		}

		if sum.Unsafe > 0 {
			fmt.Fprintf(w, "  %d keys contain a comma or quote and will be dropped from written word lists\n", sum.Unsafe)
		}
	}

	return res
}

// Scan reads a "token,weight" CSV file and summarizes it.
func Scan(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	sum := Summary{Sorted: true}
	prev := math.Inf(1)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Summary{}, err
		}

		line, _ := r.FieldPos(1)

		val, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return Summary{}, fmt.Errorf("line %d: weight %q: %w", line, record[1], err)
		}

		if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
			return Summary{}, fmt.Errorf("line %d: weight %v is not a finite non-negative number", line, val)
		}

		if val > prev && sum.Sorted {
			sum.Sorted = false
			sum.FirstBad = line
		}

		if strings.ContainsAny(record[0], `,"`) {
			sum.Unsafe++
		}

		prev = val
		sum.Rows++
		sum.Total += val
	}

	return sum, nil
}
