// Package testutil provides shared fixture helpers for tests.
//
// Typical usage:
//
//	func TestReadFreqs(t *testing.T) {
//	    path := testutil.WriteCSV(t, [][]string{{"the", "1000"}, {"cat", "10"}})
//	    ...
//	}
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to name inside a fresh temp directory and
// returns the full path.
func WriteFile(tb testing.TB, name, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", path, err)
	}

	return path
}

// WriteCSV writes rows as a headerless CSV file and returns its path.
func WriteCSV(tb testing.TB, rows [][]string) string {
	tb.Helper()

	var sb strings.Builder

	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		tb.Fatalf("encode csv fixture: %v", err)
	}

	return WriteFile(tb, "input.csv", sb.String())
}

// ReadCSV parses a headerless two-column CSV file.
func ReadCSV(tb testing.TB, path string) [][]string {
	tb.Helper()

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	if err != nil {
		tb.Fatalf("parse %s: %v", path, err)
	}

	return rows
}
