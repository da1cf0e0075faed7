package trie

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Extend performs the LZW dictionary step. It consumes the longest prefix of
// s that is already in the trie, attaches one new child holding next() at
// the first symbol that does not continue the match, and returns the value of
// the matched prefix. The divergence symbol is left in s so that the next
// call starts matching from it.
//
// Outcomes:
//   - s empty on entry: zero value, false, nil.
//   - s drained while every symbol matched: the matched value, true and
//     ErrStreamExhausted. Nothing is inserted.
//   - first symbol unknown: ErrUnknownSymbol, nothing consumed or inserted.
//   - matched prefix is not a complete entry: zero value, false and
//     ErrNoValue. Nothing is inserted and s is left at the divergence symbol.
//   - next fails: the matched value, true and the wrapped error. Nothing is
//     inserted and s is left at the divergence symbol.
func (t *Trie[K, V]) Extend(s Stream[K], next func() (V, error)) (V, bool, error) {
	var zero V

	n := t.root
	depth := 0
	for {
		k, ok := s.Peek()
		if !ok {
			if depth == 0 {
				return zero, false, nil
			}
			log.Trace().Int("depth", depth).Msg("Stream ended while matching")
			return n.value, n.hasValue, ErrStreamExhausted
		}

		if child, exists := n.children[k]; exists {
			s.Next()
			n = child
			depth++
			continue
		}

		if depth == 0 {
			return zero, false, fmt.Errorf("extend: %w", ErrUnknownSymbol)
		}
		if !n.hasValue {
			return zero, false, fmt.Errorf("extend: %w", ErrNoValue)
		}

		v, err := next()
		if err != nil {
			return n.value, n.hasValue, fmt.Errorf("extend: %w", err)
		}
		n.children[k] = newLeaf[K](v)
		log.Trace().Int("depth", depth+1).Interface("value", v).Msg("Inserted new entry")
		return n.value, n.hasValue, nil
	}
}

// Longest consumes the longest prefix of s that has a path in the trie and
// returns the value at its end without modifying the trie. In an LZW
// dictionary every node is an entry, so this is the longest known entry.
// It returns false and no error when s is empty, ErrUnknownSymbol when
// the first symbol has no entry and ErrNoValue when the consumed prefix is
// not a complete entry.
func (t *Trie[K, V]) Longest(s Stream[K]) (V, bool, error) {
	var zero V

	n := t.root
	depth := 0
	for {
		k, ok := s.Peek()
		if !ok {
			break
		}
		child, exists := n.children[k]
		if !exists {
			break
		}
		s.Next()
		n = child
		depth++
	}

	if depth == 0 {
		if _, ok := s.Peek(); ok {
			return zero, false, fmt.Errorf("longest: %w", ErrUnknownSymbol)
		}
		return zero, false, nil
	}
	if !n.hasValue {
		return zero, false, fmt.Errorf("longest: %w", ErrNoValue)
	}
	return n.value, true, nil
}
