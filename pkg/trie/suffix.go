package trie

import (
	"fmt"
	"slices"
)

// SuffixTree stores every key reversed in a PrefixTree, which turns prefix
// matching into suffix matching. The zero value is an empty tree.
type SuffixTree[V any] struct {
	prefix PrefixTree[V]
}

// NewSuffixTree returns an empty tree.
func NewSuffixTree[V any]() *SuffixTree[V] {
	return &SuffixTree[V]{}
}

// NewSuffixSet returns a presence tree holding words.
func NewSuffixSet(words ...string) *SuffixTree[struct{}] {
	t := NewSuffixTree[struct{}]()
	for _, w := range words {
		t.Insert(w, struct{}{})
	}
	return t
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

// Insert stores word with value v.
func (t *SuffixTree[V]) Insert(word string, v V) {
	t.prefix.Insert(reverse(word), v)
}

// Get returns the value stored under word.
func (t *SuffixTree[V]) Get(word string) (V, bool) {
	return t.prefix.Get(reverse(word))
}

// Delete removes word.
func (t *SuffixTree[V]) Delete(word string) error {
	if err := t.prefix.root.delete([]rune(reverse(word))); err != nil {
		return fmt.Errorf("delete %q: %w", word, err)
	}
	return nil
}

// Contains reports whether word is stored.
func (t *SuffixTree[V]) Contains(word string) bool {
	m, ok := t.LongestMatch(word)
	return ok && m == word
}

// LongestMatch returns the longest suffix of word that is a stored key, with
// the same ok semantics as PrefixTree.LongestMatch.
func (t *SuffixTree[V]) LongestMatch(word string) (match string, ok bool) {
	m, ok := t.prefix.LongestMatch(reverse(word))
	if !ok {
		return "", false
	}
	return reverse(m), true
}

// Len returns the number of stored keys.
func (t *SuffixTree[V]) Len() int {
	return t.prefix.Len()
}

// String renders the underlying reversed structure.
func (t *SuffixTree[V]) String() string {
	return t.prefix.String()
}
