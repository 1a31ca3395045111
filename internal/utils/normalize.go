package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord trims s, composes it to NFC and lower-cases it.
// Decomposed umlauts ("a" + U+0308) become a single rune so they match the alphabet.
func NormalizeWord(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
