package trie

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
)

// Insert adds seq to the trie with value v, overwriting any previous value.
// Once the path leaves the existing nodes, the rest of seq is attached as a
// single tail.
func (t *Trie[K, V]) Insert(seq []K, v V) error {
	if len(seq) == 0 {
		return fmt.Errorf("insert: %w", ErrEmptySequence)
	}

	n := t.root
	for i, k := range seq {
		child, exists := n.children[k]
		if !exists {
			log.Trace().Int("depth", i).Int("tail", len(seq)-i).Msg("Path not in trie, attaching tail")
			n.children[k] = newTail(seq[i:], v)
			return nil
		}
		n = child
	}

	if n.hasValue {
		log.Trace().Interface("old", n.value).Interface("new", v).Msg("Entry already in trie, updating value")
	}
	n.setValue(v)
	return nil
}

// InsertRecursive is the recursive formulation of Insert. It creates one
// node per missing symbol instead of attaching a tail.
func (t *Trie[K, V]) InsertRecursive(seq []K, v V) error {
	if len(seq) == 0 {
		return fmt.Errorf("insert: %w", ErrEmptySequence)
	}
	t.root.insert(seq, v)
	return nil
}

func (n *node[K, V]) insert(seq []K, v V) {
	if len(seq) == 0 {
		n.setValue(v)
		return
	}

	child, exists := n.children[seq[0]]
	if !exists {
		child = newNode[K, V]()
		n.children[seq[0]] = child
	}
	child.insert(seq[1:], v)
}

// Search returns the value stored for seq. The boolean is false when the
// node for seq exists but is not a complete entry. A sequence with no node
// at all yields ErrNotFound.
func (t *Trie[K, V]) Search(seq []K) (V, bool, error) {
	var zero V
	if len(seq) == 0 {
		return zero, false, fmt.Errorf("search: %w", ErrEmptySequence)
	}

	n := t.findNode(seq)
	if n == nil {
		log.Debug().Int("length", len(seq)).Msg("Searched for a sequence not present")
		return zero, false, ErrNotFound
	}
	return n.value, n.hasValue, nil
}

// SearchRecursive is the recursive formulation of Search.
func (t *Trie[K, V]) SearchRecursive(seq []K) (V, bool, error) {
	var zero V
	if len(seq) == 0 {
		return zero, false, fmt.Errorf("search: %w", ErrEmptySequence)
	}
	return t.root.search(seq)
}

func (n *node[K, V]) search(seq []K) (V, bool, error) {
	if len(seq) == 0 {
		return n.value, n.hasValue, nil
	}

	child, exists := n.children[seq[0]]
	if !exists {
		var zero V
		return zero, false, ErrNotFound
	}
	return child.search(seq[1:])
}

// findNode returns the node corresponding to seq, or nil if not found
func (t *Trie[K, V]) findNode(seq []K) *node[K, V] {
	n := t.root
	for _, k := range seq {
		child, exists := n.children[k]
		if !exists {
			return nil
		}
		n = child
	}
	return n
}

// PopulateInitial inserts every pair as a single-symbol entry, in order.
func (t *Trie[K, V]) PopulateInitial(pairs iter.Seq2[K, V]) error {
	for k, v := range pairs {
		if err := t.Insert([]K{k}, v); err != nil {
			return err
		}
	}
	return nil
}
