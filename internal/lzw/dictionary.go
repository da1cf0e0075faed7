package lzw

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/lzw-trie/internal/trie"
)

// Entry is a dictionary sequence and its code
type Entry[T comparable] struct {
	Sequence []Token[T]
	Code     Code
}

// Dictionary is an LZW dictionary backed by a trie of tokens. It is not safe
// for concurrent use; compress independent streams with separate instances.
type Dictionary[T comparable] struct {
	spec     Spec
	alphabet []T

	codes     *CodeGenerator
	entries   *trie.Trie[Token[T], Code]
	clearCode Code
	endCode   Code
	frozen    bool
}

// NewDictionary creates a dictionary seeded with alphabet followed by the
// control codes enabled by spec.
func NewDictionary[T comparable](spec Spec, alphabet []T) (*Dictionary[T], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	d := &Dictionary[T]{
		spec:     spec,
		alphabet: slices.Clone(alphabet),
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// seed allocates the starting codes in order: alphabet, Clear, End.
func seed[T comparable](spec Spec, g *CodeGenerator, alphabet []T, add func(Token[T], Code)) error {
	tokens := Tokens(alphabet)
	if spec.ClearCode {
		tokens = append(tokens, Clear[T]())
	}
	if spec.EndCode {
		tokens = append(tokens, End[T]())
	}

	for _, tok := range tokens {
		c, err := g.Next()
		if err != nil {
			return fmt.Errorf("%d symbols at width %d: %w", len(tokens), spec.Width, ErrAlphabetTooLarge)
		}
		add(tok, c)
	}
	return nil
}

// Reset discards every entry and rebuilds the starting dictionary.
func (d *Dictionary[T]) Reset() error {
	codes := d.spec.newGenerator()
	entries := trie.New[Token[T], Code]()

	var clearCode, endCode Code
	var pairs []Entry[T]
	err := seed(d.spec, codes, d.alphabet, func(tok Token[T], c Code) {
		switch tok.Kind {
		case KindClear:
			clearCode = c
		case KindEnd:
			endCode = c
		}
		pairs = append(pairs, Entry[T]{Sequence: []Token[T]{tok}, Code: c})
	})
	if err != nil {
		return err
	}

	err = entries.PopulateInitial(func(yield func(Token[T], Code) bool) {
		for _, p := range pairs {
			if !yield(p.Sequence[0], p.Code) {
				return
			}
		}
	})
	if err != nil {
		return err
	}

	d.codes, d.entries = codes, entries
	d.clearCode, d.endCode = clearCode, endCode
	d.frozen = false

	log.Debug().Int("entries", len(pairs)).Uint32("next_code", codes.Peek()).Msg("Dictionary initialized")
	return nil
}

// Extend consumes the longest known prefix of s, adds that prefix extended
// by the following symbol under a fresh code, and returns the prefix's code.
// A frozen dictionary only matches. See trie.Trie.Extend for the outcomes.
func (d *Dictionary[T]) Extend(s trie.Stream[Token[T]]) (Code, bool, error) {
	if d.frozen {
		return d.entries.Longest(s)
	}
	return d.entries.Extend(s, func() (Code, error) {
		return d.spec.allocate(d.codes)
	})
}

// Freeze stops the dictionary from growing.
func (d *Dictionary[T]) Freeze() {
	d.frozen = true
}

// Frozen reports whether the dictionary has stopped growing
func (d *Dictionary[T]) Frozen() bool {
	return d.frozen
}

// Search returns the code for a payload sequence.
func (d *Dictionary[T]) Search(values []T) (Code, bool, error) {
	return d.entries.Search(Tokens(values))
}

// SearchTokens returns the code for a token sequence, including control tokens.
func (d *Dictionary[T]) SearchTokens(tokens []Token[T]) (Code, bool, error) {
	return d.entries.Search(tokens)
}

// ClearCode returns the Clear code and whether one is reserved
func (d *Dictionary[T]) ClearCode() (Code, bool) {
	return d.clearCode, d.spec.ClearCode
}

// EndCode returns the End code and whether one is reserved
func (d *Dictionary[T]) EndCode() (Code, bool) {
	return d.endCode, d.spec.EndCode
}

// NextCode returns the value the next new entry would be assigned.
func (d *Dictionary[T]) NextCode() uint32 {
	return d.codes.Peek()
}

// Width returns the current code width
func (d *Dictionary[T]) Width() uint8 {
	return d.codes.Width()
}

// Spec returns the dictionary's spec
func (d *Dictionary[T]) Spec() Spec {
	return d.spec
}

// Len returns the number of entries, control entries included
func (d *Dictionary[T]) Len() int {
	return d.entries.Len()
}

// Entries returns a copy of every entry ordered by code.
func (d *Dictionary[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], 0, d.entries.Len())
	d.entries.Walk(func(seq []Token[T], c Code) bool {
		entries = append(entries, Entry[T]{Sequence: slices.Clone(seq), Code: c})
		return true
	})
	slices.SortFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(a.Code.Value, b.Code.Value)
	})
	return entries
}

// isCodeSpaceExhausted reports whether err came from a full code space
func isCodeSpaceExhausted(err error) bool {
	return errors.Is(err, ErrCodeSpaceExhausted)
}
