package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLang trims and lowercases a language tag. An empty tag means
// language-independent tokenization.
func NormalizeLang(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateLang reports whether lang parses as a BCP 47 tag.
func ValidateLang(lang string) error {
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", lang, err)
	}

	return nil
}
