package doctor_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/example/go-wordfreq-builder/internal/doctor"
	"github.com/example/go-wordfreq-builder/internal/testutil"
)

func hasFailureContaining(failures []string, substr string) bool {
	for _, f := range failures {
		if strings.Contains(f, substr) {
			return true
		}
	}

	return false
}

// ---------------------------------------------------------------------------
// all-pass scenario
// ---------------------------------------------------------------------------

func TestRun_AllChecksPass(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"the", "1000"}, {"cat", "10"}, {"xyz123", "1"}})

	cfg := doctor.Config{
		Wordlists:     []string{path},
		RequireSorted: true,
		PackCutoff:    -600,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("expected all checks to pass; failures: %v", result.Failures())
	}

	if !strings.Contains(out.String(), "3 rows") {
		t.Errorf("output should report the row count, got: %q", out.String())
	}
}

// ---------------------------------------------------------------------------
// failing inputs
// ---------------------------------------------------------------------------

func TestRun_UnsortedFailsWhenRequired(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"a", "1"}, {"b", "5"}})

	var out strings.Builder
	result := doctor.Run(doctor.Config{Wordlists: []string{path}, RequireSorted: true}, &out)

	if !hasFailureContaining(result.Failures(), "not sorted") {
		t.Fatalf("expected a sortedness failure, got: %v", result.Failures())
	}
}

func TestRun_UnsortedPassesWhenNotRequired(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"a", "1"}, {"b", "5"}})

	var out strings.Builder
	result := doctor.Run(doctor.Config{Wordlists: []string{path}}, &out)

	if result.Failed() {
		t.Fatalf("unexpected failures: %v", result.Failures())
	}

	if !strings.Contains(out.String(), "sorted=false") {
		t.Errorf("output should report sorted=false, got: %q", out.String())
	}
}

func TestRun_ZeroTotalFails(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"a", "0"}})

	var out strings.Builder
	result := doctor.Run(doctor.Config{Wordlists: []string{path}}, &out)

	if !hasFailureContaining(result.Failures(), "zero") {
		t.Fatalf("expected a zero-total failure, got: %v", result.Failures())
	}
}

func TestRun_MissingFileFails(t *testing.T) {
	var out strings.Builder
	result := doctor.Run(doctor.Config{Wordlists: []string{"/nonexistent/list.csv"}}, &out)

	if !result.Failed() {
		t.Fatal("expected failure for missing word list")
	}

	if !strings.Contains(out.String(), doctor.FailMark) {
		t.Errorf("output should contain FailMark, got: %q", out.String())
	}
}

func TestRun_PositivePackCutoffFails(t *testing.T) {
	var out strings.Builder
	result := doctor.Run(doctor.Config{PackCutoff: 10}, &out)

	if !hasFailureContaining(result.Failures(), "pack cutoff") {
		t.Fatalf("expected a pack cutoff failure, got: %v", result.Failures())
	}
}

func TestRun_ReportsUnsafeKeys(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"foo,bar", "5"}, {"plain", "1"}})

	var out strings.Builder
	result := doctor.Run(doctor.Config{Wordlists: []string{path}}, &out)

	if result.Failed() {
		t.Fatalf("unsafe keys should warn, not fail: %v", result.Failures())
	}

	if !strings.Contains(out.String(), "1 keys contain a comma or quote") {
		t.Errorf("output should mention unsafe keys, got: %q", out.String())
	}
}

func TestResult_AddFailure(t *testing.T) {
	var res doctor.Result
	res.AddFailure("external")

	if !res.Failed() || res.Failures()[0] != "external" {
		t.Fatalf("Failures() = %v; want [external]", res.Failures())
	}
}

// ---------------------------------------------------------------------------
// Scan
// ---------------------------------------------------------------------------

func TestScan(t *testing.T) {
	path := testutil.WriteCSV(t, [][]string{{"a", "5"}, {"b", "5"}, {"c", "7"}, {"d", "1"}})

	sum, err := doctor.Scan(path)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if sum.Rows != 4 || sum.Total != 18 {
		t.Errorf("Scan = %+v; want 4 rows totalling 18", sum)
	}

	if sum.Sorted || sum.FirstBad != 3 {
		t.Errorf("Scan = %+v; want unsorted at line 3", sum)
	}
}

func TestScan_Errors(t *testing.T) {
	if _, err := doctor.Scan("/nonexistent/list.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Scan(missing) error = %v; want fs.ErrNotExist", err)
	}

	for _, content := range []string{"a,x\n", "a,-1\n", "a,NaN\n", "a\n"} {
		path := testutil.WriteFile(t, "bad.csv", content)
		if _, err := doctor.Scan(path); err == nil {
			t.Errorf("Scan(%q) = nil error; want error", content)
		}
	}
}
