package syllable

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Alphabet partitions the letters of a language into vowels and consonants.
type Alphabet struct {
	Name       string
	Vowels     string
	Consonants string
}

// Latin is the plain Latin alphabet with y counted as a vowel.
var Latin = Alphabet{
	Name:       "latin",
	Vowels:     "aeiouy",
	Consonants: "bcdfghjklmnpqrstvwxz",
}

// German extends Latin with umlauts and sharp s.
var German = Alphabet{
	Name:       "german",
	Vowels:     "aeiouyäöü",
	Consonants: "bcdfghjklmnpqrstvwxzß",
}

var presets = map[string]Alphabet{
	Latin.Name:  Latin,
	German.Name: German,
}

// PresetByName returns a built-in alphabet.
func PresetByName(name string) (Alphabet, bool) {
	a, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// PresetNames lists the built-in alphabets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides replaces the vowel and/or consonant set when the argument is
// non-empty. Overrides are lower-cased like the words they classify.
func (a Alphabet) WithOverrides(vowels, consonants string) Alphabet {
	if vowels != "" {
		a.Vowels = strings.ToLower(vowels)
		a.Name = "custom"
	}
	if consonants != "" {
		a.Consonants = strings.ToLower(consonants)
		a.Name = "custom"
	}
	return a
}

func (a Alphabet) IsVowel(r rune) bool {
	return strings.ContainsRune(a.Vowels, r)
}

func (a Alphabet) IsConsonant(r rune) bool {
	return strings.ContainsRune(a.Consonants, r)
}

// Contains reports whether r is a vowel or a consonant.
func (a Alphabet) Contains(r rune) bool {
	return a.IsVowel(r) || a.IsConsonant(r)
}

// Validate checks that both sets are non-empty, lower-case and disjoint.
// Segment lower-cases words, so an upper-case letter could never match.
func (a Alphabet) Validate() error {
	if a.Vowels == "" {
		return fmt.Errorf("%w: no vowels", ErrInvalidAlphabet)
	}
	if a.Consonants == "" {
		return fmt.Errorf("%w: no consonants", ErrInvalidAlphabet)
	}
	for _, r := range a.Vowels + a.Consonants {
		if unicode.ToLower(r) != r {
			return fmt.Errorf("%w: %q is not lower-case", ErrInvalidAlphabet, r)
		}
	}
	for _, r := range a.Vowels {
		if a.IsConsonant(r) {
			return fmt.Errorf("%w: %q is both vowel and consonant", ErrInvalidAlphabet, r)
		}
	}
	return nil
}
