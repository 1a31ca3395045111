/*
Package syllable splits words into syllables made of onset, nucleus and coda.

Classify decomposes a single syllable-shaped unit and is what the onset
trainer runs over a corpus. Segmenter splits whole words with the maximal
onset principle: of the consonants between two vowel groups, the longest
trailing cluster that is a known onset starts the next syllable and the rest
closes the previous one.

	seg := syllable.NewSegmenter(syllable.German, onsets)
	syls, err := seg.Segment("unterscheidung")
	// un - ter - schei - dung (depending on the trained onsets)
*/
package syllable

import "fmt"

// Syllable is one onset-nucleus-coda unit. Onset and Coda may be empty,
// Nucleus never is.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
}

func (s Syllable) String() string {
	return s.Onset + s.Nucleus + s.Coda
}

// Len returns the number of characters in the syllable.
func (s Syllable) Len() int {
	return len([]rune(s.String()))
}

// Classify decomposes unit as consonants* vowels+ consonants* over a. It
// fails with ErrNoMatch for the empty string, characters outside the
// alphabet, and units with more than one vowel group.
func Classify(unit string, a Alphabet) (Syllable, error) {
	runes := []rune(unit)
	i := 0
	for i < len(runes) && a.IsConsonant(runes[i]) {
		i++
	}
	onsetEnd := i
	for i < len(runes) && a.IsVowel(runes[i]) {
		i++
	}
	nucleusEnd := i
	for i < len(runes) && a.IsConsonant(runes[i]) {
		i++
	}

	if nucleusEnd == onsetEnd || i != len(runes) {
		return Syllable{}, fmt.Errorf("%w: %q", ErrNoMatch, unit)
	}
	return Syllable{
		Onset:   string(runes[:onsetEnd]),
		Nucleus: string(runes[onsetEnd:nucleusEnd]),
		Coda:    string(runes[nucleusEnd:]),
	}, nil
}
