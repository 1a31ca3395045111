package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ContainsSpace checks if a string contains whitespace anywhere
func ContainsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// IsValidWord checks if a word should be handed to the segmenter.
// Rejects empty words, words longer than maxLen runes, and words containing
// digits or whitespace. maxLen <= 0 disables the length check.
func IsValidWord(s string, maxLen int) bool {
	if s == "" {
		return false
	}
	if maxLen > 0 && len([]rune(s)) > maxLen {
		return false
	}
	return !ContainsNumbers(s) && !ContainsSpace(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}

	var sb strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
