package wordfreq

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestMergeFreqs_AbsentCountsAsZero(t *testing.T) {
	merged := MergeFreqs(Freqs{"a": 1.0}, Freqs{"b": 1.0})

	if len(merged) != 2 {
		t.Fatalf("merged = %v; want two tokens", merged)
	}

	if merged["a"] != 0.5 || merged["b"] != 0.5 {
		t.Fatalf("merged = %v; want a:0.5 b:0.5", merged)
	}
}

func TestMergeFreqs_Average(t *testing.T) {
	merged := MergeFreqs(
		Freqs{"the": 0.6, "cat": 0.4},
		Freqs{"the": 0.8, "dog": 0.2},
		Freqs{"the": 0.1, "cat": 0.9},
	)

	want := map[string]float64{"the": 0.5, "cat": 1.3 / 3, "dog": 0.2 / 3}
	for token, f := range want {
		if !approxEqual(merged[token], f) {
			t.Errorf("merged[%q] = %v; want %v", token, merged[token], f)
		}
	}

	if !approxEqual(merged.Total(), 1) {
		t.Errorf("Total() = %v; want 1", merged.Total())
	}
}

func TestMergeFreqs_Empty(t *testing.T) {
	if merged := MergeFreqs(); len(merged) != 0 {
		t.Fatalf("MergeFreqs() = %v; want empty", merged)
	}
}

func TestMergeFreqs_SingleSourceIsCopy(t *testing.T) {
	src := Freqs{"a": 0.25, "b": 0.75}

	merged := MergeFreqs(src)
	merged["a"] = 99

	if src["a"] != 0.25 {
		t.Fatal("MergeFreqs result aliases its input")
	}
}

func TestMergeFreqs_DoesNotMutateInputs(t *testing.T) {
	a := Freqs{"x": 1}
	b := Freqs{"y": 1}

	_ = MergeFreqs(a, b)

	if len(a) != 1 || a["x"] != 1 || len(b) != 1 || b["y"] != 1 {
		t.Fatalf("inputs mutated: a=%v b=%v", a, b)
	}
}

func drawFreqs(rt *rapid.T, label string) Freqs {
	n := rapid.IntRange(0, 8).Draw(rt, label+"-len")

	f := make(Freqs, n)
	for i := range n {
		token := fmt.Sprintf("t%d", rapid.IntRange(0, 12).Draw(rt, fmt.Sprintf("%s-token-%d", label, i)))
		f[token] = rapid.Float64Range(0, 1).Draw(rt, fmt.Sprintf("%s-weight-%d", label, i))
	}

	return f
}

func TestMergeFreqs_OrderIndependent_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a, b, c := drawFreqs(rt, "a"), drawFreqs(rt, "b"), drawFreqs(rt, "c")

		abc := MergeFreqs(a, b, c)
		cab := MergeFreqs(c, a, b)

		if len(abc) != len(cab) {
			rt.Fatalf("token sets differ: %v vs %v", abc, cab)
		}

		for token, f := range abc {
			g, ok := cab[token]
			if !ok || !approxEqual(f, g) {
				rt.Fatalf("merged[%q] = %v vs %v", token, f, g)
			}
		}
	})
}

func TestMergeFreqs_UnionOfTokens_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a, b := drawFreqs(rt, "a"), drawFreqs(rt, "b")

		merged := MergeFreqs(a, b)
		for _, src := range []Freqs{a, b} {
			for token := range src {
				if _, ok := merged[token]; !ok {
					rt.Fatalf("token %q missing from merge", token)
				}
			}
		}
	})
}
