/*
Package trie implements a rune-keyed tree with exact lookup and longest-prefix
matching, plus a suffix variant that reverses keys at its boundary.

Three types are exported:

	Node[V]        a tree node; stores any non-empty key below itself
	PrefixTree[V]  a root node that may also store the empty key
	SuffixTree[V]  a PrefixTree fed with reversed keys, so that
	               LongestMatch finds the longest stored suffix

Keys are iterated by rune, so multi-byte letters such as "ä" or "ß" occupy a
single node. A node carries a value if and only if it terminates a stored key;
such a node is called final. Nodes that are neither final nor have children are
pruned on Delete, the tree never keeps dead leaves.

None of the types are safe for concurrent mutation. Concurrent reads (Get,
Contains, LongestMatch) against a tree nobody is writing to are fine.
*/
package trie

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidArgument is returned when the empty key is inserted below a plain node.
	ErrInvalidArgument = errors.New("empty key on a non-root node")
	// ErrKeyNotFound is returned when deleting a key that is not stored.
	ErrKeyNotFound = errors.New("key not found")
)

// Node is one character along a stored key.
type Node[V any] struct {
	label    rune
	children map[rune]*Node[V]
	value    *V
}

// NewNode returns a detached node for label.
func NewNode[V any](label rune) *Node[V] {
	return &Node[V]{label: label}
}

// Label returns the character this node represents, 0 for a root.
func (n *Node[V]) Label() rune {
	return n.label
}

// IsFinal reports whether the path ending here is a stored key.
func (n *Node[V]) IsFinal() bool {
	return n.value != nil
}

// Insert stores key below n with value v. Missing nodes along the path are
// created; only the terminal node receives the value.
func (n *Node[V]) Insert(key string, v V) error {
	if key == "" {
		return ErrInvalidArgument
	}
	n.insert([]rune(key), v)
	return nil
}

func (n *Node[V]) insert(key []rune, v V) {
	cur := n
	for _, r := range key {
		child, ok := cur.children[r]
		if !ok {
			if cur.children == nil {
				cur.children = make(map[rune]*Node[V])
			}
			child = &Node[V]{label: r}
			cur.children[r] = child
		}
		cur = child
	}
	cur.value = &v
}

// Get returns the value stored under key. Get("") reports n's own value.
func (n *Node[V]) Get(key string) (V, bool) {
	node := n.find([]rune(key))
	if node == nil || node.value == nil {
		var zero V
		return zero, false
	}
	return *node.value, true
}

func (n *Node[V]) find(key []rune) *Node[V] {
	cur := n
	for _, r := range key {
		cur = cur.children[r]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Contains reports whether key is stored below n.
func (n *Node[V]) Contains(key string) bool {
	return key != "" && n.LongestMatch(key) == key
}

// Delete removes key and prunes every node left without value or children.
func (n *Node[V]) Delete(key string) error {
	if err := n.delete([]rune(key)); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (n *Node[V]) delete(key []rune) error {
	if len(key) == 0 {
		if !n.IsFinal() {
			return ErrKeyNotFound
		}
		n.value = nil
		return nil
	}
	child := n.children[key[0]]
	if child == nil {
		return ErrKeyNotFound
	}
	if err := child.delete(key[1:]); err != nil {
		return err
	}
	if len(child.children) == 0 && !child.IsFinal() {
		delete(n.children, key[0])
	}
	return nil
}

// LongestMatch returns the longest prefix of key that is a stored key below
// n, or "" when there is none.
func (n *Node[V]) LongestMatch(key string) string {
	runes := []rune(key)
	return string(runes[:n.matchLen(runes)])
}

// matchLen follows the single child chain spelled by key. A deeper final node
// always wins over a shallower one.
func (n *Node[V]) matchLen(key []rune) int {
	if len(key) == 0 {
		return 0
	}
	child := n.children[key[0]]
	if child == nil {
		return 0
	}
	if l := child.matchLen(key[1:]); l > 0 {
		return l + 1
	}
	if child.IsFinal() {
		return 1
	}
	return 0
}

// Len counts the stored keys in the subtree rooted at n, n included.
func (n *Node[V]) Len() int {
	count := 0
	if n.IsFinal() {
		count++
	}
	for _, child := range n.children {
		count += child.Len()
	}
	return count
}

// String renders the subtree as 'label': (value, {children}), children in
// rune order. Structural tests compare against it.
func (n *Node[V]) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node[V]) write(sb *strings.Builder) {
	sb.WriteByte('\'')
	if label := n.Label(); label != 0 {
		sb.WriteRune(label)
	}
	sb.WriteString("': (")
	if n.value == nil {
		sb.WriteString("<nil>")
	} else {
		fmt.Fprint(sb, *n.value)
	}
	sb.WriteString(", {")

	labels := make([]rune, 0, len(n.children))
	for r := range n.children {
		labels = append(labels, r)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for i, r := range labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		n.children[r].write(sb)
	}
	sb.WriteString("})")
}
