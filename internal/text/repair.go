package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Repairer canonicalizes a token before it is counted. Repair must be
// idempotent: Repair(Repair(s)) == Repair(s).
type Repairer interface {
	Repair(token string) string
}

// NFCRepairer removes control characters and U+FFFD left behind by lossy
// decoding, then composes the token to Unicode NFC so that "e" + U+0301
// and "é" count as the same word.
type NFCRepairer struct{}

var _ Repairer = NFCRepairer{}

func (NFCRepairer) Repair(token string) string {
	t := transform.Chain(
		runes.Remove(runes.Predicate(isNoise)),
		norm.NFC,
	)

	out, _, err := transform.String(t, token)
	if err != nil {
		// Neither transformer reports errors on valid input; fall back to
		// plain NFC rather than dropping the token.
		return norm.NFC.String(token)
	}

	return out
}

// DefaultRepairer returns the repairer used when a caller does not inject one.
func DefaultRepairer() Repairer {
	return NFCRepairer{}
}

func isNoise(r rune) bool {
	return r == unicode.ReplacementChar || unicode.Is(unicode.Cc, r)
}
