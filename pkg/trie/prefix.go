package trie

import "fmt"

// PrefixTree is a dictionary-like tree whose root may store the empty key.
// The zero value is an empty tree ready to use.
type PrefixTree[V any] struct {
	root Node[V]
}

// NewPrefixTree returns an empty tree.
func NewPrefixTree[V any]() *PrefixTree[V] {
	return &PrefixTree[V]{}
}

// NewPrefixSet returns a presence tree holding words.
func NewPrefixSet(words ...string) *PrefixTree[struct{}] {
	t := NewPrefixTree[struct{}]()
	for _, w := range words {
		t.Insert(w, struct{}{})
	}
	return t
}

// Insert stores key with value v. The empty key is stored on the root.
func (t *PrefixTree[V]) Insert(key string, v V) {
	if key == "" {
		t.root.value = &v
		return
	}
	t.root.insert([]rune(key), v)
}

// Get returns the value stored under key.
func (t *PrefixTree[V]) Get(key string) (V, bool) {
	return t.root.Get(key)
}

// Delete removes key, the empty key included.
func (t *PrefixTree[V]) Delete(key string) error {
	if err := t.root.delete([]rune(key)); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Contains reports whether key is stored.
func (t *PrefixTree[V]) Contains(key string) bool {
	m, ok := t.LongestMatch(key)
	return ok && m == key
}

// LongestMatch returns the longest stored prefix of key. ok is false when no
// stored key is a prefix of key; ("", true) means only the empty key matched.
func (t *PrefixTree[V]) LongestMatch(key string) (match string, ok bool) {
	m := t.root.LongestMatch(key)
	if m == "" {
		return "", t.root.IsFinal()
	}
	return m, true
}

// Len returns the number of stored keys.
func (t *PrefixTree[V]) Len() int {
	return t.root.Len()
}

func (t *PrefixTree[V]) String() string {
	return t.root.String()
}
