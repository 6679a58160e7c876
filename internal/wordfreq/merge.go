package wordfreq

// MergeFreqs averages several frequency tables. Every token in any input
// appears in the result with the mean of its weights over all len(maps)
// sources, where a source without the token contributes zero. Merging
// {"a": 1} and {"b": 1} gives {"a": 0.5, "b": 0.5}.
//
// The inputs are not modified. With no inputs the result is empty.
func MergeFreqs(maps ...Freqs) Freqs {
	merged := make(Freqs)
	if len(maps) == 0 {
		return merged
	}

	for _, m := range maps {
		for token := range m {
			merged[token] = 0
		}
	}

	n := float64(len(maps))
	for token := range merged {
		sum := 0.0
		for _, m := range maps {
			sum += m[token]
		}

		merged[token] = sum / n
	}

	return merged
}
