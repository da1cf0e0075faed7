package lzw

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/lzw-trie/internal/trie"
)

// Encoder turns a symbol stream into dictionary codes by repeating the
// dictionary's Extend step until the stream is drained.
type Encoder[T comparable] struct {
	dict    *Dictionary[T]
	metrics *Metrics
}

// NewEncoder creates an encoder over d. metrics may be nil.
func NewEncoder[T comparable](d *Dictionary[T], metrics *Metrics) *Encoder[T] {
	return &Encoder[T]{dict: d, metrics: metrics}
}

// Dictionary returns the dictionary the encoder grows
func (e *Encoder[T]) Dictionary() *Dictionary[T] {
	return e.dict
}

// Encode consumes s and returns the emitted codes. When the code space fills
// up, the dictionary is rebuilt after a Clear code if one is reserved,
// and frozen otherwise. The End code, if reserved, is emitted last.
func (e *Encoder[T]) Encode(s trie.Stream[Token[T]]) ([]Code, error) {
	var out []Code
	emit := func(c Code) {
		out = append(out, c)
		e.metrics.recordCode(c)
	}

	for done := false; !done; {
		growing := !e.dict.Frozen()
		c, ok, err := e.dict.Extend(s)

		switch {
		case err == nil && !ok:
			done = true
			continue
		case err == nil:
			if growing {
				e.metrics.recordEntry()
			}
		case errors.Is(err, trie.ErrStreamExhausted):
			done = true
		case isCodeSpaceExhausted(err):
			if ok {
				emit(c)
			}
			if err := e.handleFullDictionary(emit); err != nil {
				return out, err
			}
			continue
		default:
			return out, err
		}

		if !ok {
			return out, fmt.Errorf("matched sequence has no code: %w", ErrInvalidCode)
		}
		emit(c)
	}

	if es, ok := s.(interface{ Err() error }); ok && es.Err() != nil {
		return out, fmt.Errorf("read input: %w", es.Err())
	}

	if end, ok := e.dict.EndCode(); ok {
		emit(end)
	}
	return out, nil
}

func (e *Encoder[T]) handleFullDictionary(emit func(Code)) error {
	clearCode, ok := e.dict.ClearCode()
	if !ok {
		log.Info().Int("entries", e.dict.Len()).Msg("Code space exhausted, freezing dictionary")
		e.dict.Freeze()
		e.metrics.recordFreeze()
		return nil
	}

	log.Info().Int("entries", e.dict.Len()).Msg("Code space exhausted, clearing dictionary")
	emit(clearCode)
	if err := e.dict.Reset(); err != nil {
		return err
	}
	e.metrics.recordReset()
	return nil
}

// EncodeValues encodes an in-memory sequence of payload symbols
func (e *Encoder[T]) EncodeValues(values []T) ([]Code, error) {
	return e.Encode(trie.NewSliceCursor(Tokens(values)))
}

// Values adapts a stream of payload symbols into a stream of tokens.
func Values[T comparable](s trie.Stream[T]) trie.Stream[Token[T]] {
	return &valueStream[T]{s: s}
}

type valueStream[T comparable] struct {
	s trie.Stream[T]
}

func (v *valueStream[T]) Peek() (Token[T], bool) {
	k, ok := v.s.Peek()
	return Value(k), ok
}

func (v *valueStream[T]) Next() (Token[T], bool) {
	k, ok := v.s.Next()
	return Value(k), ok
}

// Err reports the underlying stream's read error, if it tracks one
func (v *valueStream[T]) Err() error {
	if es, ok := v.s.(interface{ Err() error }); ok {
		return es.Err()
	}
	return nil
}
