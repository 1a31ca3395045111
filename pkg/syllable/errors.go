package syllable

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned by Classify for units that are not a single
	// consonants-vowels-consonants syllable.
	ErrNoMatch = errors.New("unit is not a syllable")
	// ErrUndefinedCharacter is matched by *UndefinedCharacterError.
	ErrUndefinedCharacter = errors.New("character outside alphabet")
	// ErrNoNucleus is returned for non-empty words without any vowel.
	ErrNoNucleus = errors.New("word has no vowel")
	// ErrInvalidAlphabet reports an empty or overlapping alphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// UndefinedCharacterError reports the first rune of a word that is neither a
// vowel nor a consonant.
type UndefinedCharacterError struct {
	Word string
	Char rune
	Pos  int // rune offset
}

func (e *UndefinedCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at position %d in %q", ErrUndefinedCharacter, e.Char, e.Pos, e.Word)
}

func (e *UndefinedCharacterError) Unwrap() error {
	return ErrUndefinedCharacter
}
