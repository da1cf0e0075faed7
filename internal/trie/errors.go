package trie

import "errors"

var (
	// ErrNotFound is returned when a searched sequence has no node in the trie.
	ErrNotFound = errors.New("sequence not present")

	// ErrEmptySequence is returned when an empty sequence is inserted or searched.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrStreamExhausted is returned by Extend when the stream ends while every
	// remaining symbol still matched an existing entry.
	ErrStreamExhausted = errors.New("stream exhausted before a new entry could be created")

	// ErrUnknownSymbol is returned by Extend and Longest when the first symbol
	// of the stream has no single-symbol entry.
	ErrUnknownSymbol = errors.New("symbol has no entry")

	// ErrNoValue is returned by Extend and Longest when the matched prefix
	// reaches a node that is not a complete entry.
	ErrNoValue = errors.New("matched prefix has no value")
)
