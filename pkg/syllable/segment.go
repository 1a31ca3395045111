package syllable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// OnsetMatcher finds the longest suffix of a consonant cluster that is a
// valid onset. ok is false when no suffix is known, the empty onset included.
type OnsetMatcher interface {
	Match(cluster string) (onset string, ok bool)
}

// MatcherFunc adapts a function, such as the LongestMatch method of a
// trie.SuffixTree, to OnsetMatcher.
type MatcherFunc func(cluster string) (string, bool)

func (f MatcherFunc) Match(cluster string) (string, bool) {
	return f(cluster)
}

// Segmenter splits words into syllables against a trained onset set. It
// never mutates the matcher, so one Segmenter can serve many goroutines as
// long as the matcher is not written to concurrently.
type Segmenter struct {
	alphabet Alphabet
	onsets   OnsetMatcher
}

// NewSegmenter returns a segmenter for alphabet a.
func NewSegmenter(a Alphabet, onsets OnsetMatcher) *Segmenter {
	return &Segmenter{alphabet: a, onsets: onsets}
}

// Alphabet returns the alphabet the segmenter scans with.
func (s *Segmenter) Alphabet() Alphabet {
	return s.alphabet
}

// run is a consonant group followed by the vowel group after it. Only the
// last run of a word can have an empty vowel group.
type run struct {
	consonants string
	vowels     string
}

func (s *Segmenter) scan(word string) ([]run, error) {
	runes := []rune(word)
	var runs []run
	i := 0
	for i < len(runes) {
		if !s.alphabet.Contains(runes[i]) {
			return nil, &UndefinedCharacterError{Word: word, Char: runes[i], Pos: i}
		}
		start := i
		for i < len(runes) && s.alphabet.IsConsonant(runes[i]) {
			i++
		}
		mid := i
		for i < len(runes) && s.alphabet.IsVowel(runes[i]) {
			i++
		}
		runs = append(runs, run{
			consonants: string(runes[start:mid]),
			vowels:     string(runes[mid:i]),
		})
	}
	return runs, nil
}

// provisional is a syllable whose coda is still open until the cluster after
// its nucleus has been split.
type provisional struct {
	Syllable
	resolved bool
}

// Segment lower-cases word and splits it into syllables, left to right. The
// concatenation of all onsets, nuclei and codas equals the lower-cased word.
// The empty word yields no syllables. Characters outside the alphabet fail
// with *UndefinedCharacterError, vowel-less words with ErrNoNucleus.
func (s *Segmenter) Segment(word string) ([]Syllable, error) {
	word = strings.ToLower(word)
	if word == "" {
		return nil, nil
	}
	runs, err := s.scan(word)
	if err != nil {
		return nil, err
	}

	syls := make([]provisional, 0, len(runs))
	for _, r := range runs {
		if r.vowels == "" {
			if len(syls) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrNoNucleus, word)
			}
			last := &syls[len(syls)-1]
			last.Coda = r.consonants
			last.resolved = true
			continue
		}

		next := provisional{Syllable: Syllable{Nucleus: r.vowels}}
		if len(syls) == 0 {
			next.Onset = r.consonants
		} else {
			prev := &syls[len(syls)-1]
			next.Onset = s.onsetOf(r.consonants)
			prev.Coda = r.consonants[:len(r.consonants)-len(next.Onset)]
			prev.resolved = true
		}
		syls = append(syls, next)
	}

	out := make([]Syllable, len(syls))
	for i, p := range syls {
		if !p.resolved {
			p.Coda = ""
		}
		out[i] = p.Syllable
	}
	return out, nil
}

// onsetOf returns the part of cluster that opens the next syllable.
func (s *Segmenter) onsetOf(cluster string) string {
	if cluster == "" {
		return ""
	}
	m, ok := s.onsets.Match(cluster)
	if !ok || !strings.HasSuffix(cluster, m) {
		log.Debugf("no onset for cluster %q, keeping it as coda", cluster)
		return ""
	}
	return m
}

// Hyphenate segments word and joins the syllables with sep.
func (s *Segmenter) Hyphenate(word, sep string) (string, error) {
	syls, err := s.Segment(word)
	if err != nil {
		return "", err
	}
	return Join(syls, sep), nil
}

// Join concatenates syllables with sep between them.
func Join(syls []Syllable, sep string) string {
	parts := make([]string, len(syls))
	for i, syl := range syls {
		parts[i] = syl.String()
	}
	return strings.Join(parts, sep)
}
