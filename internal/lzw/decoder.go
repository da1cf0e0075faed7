package lzw

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// Decoder rebuilds the symbol sequence from codes produced by an Encoder
// with the same spec and alphabet. It grows its table in lockstep with the
// encoder's dictionary, one entry behind.
type Decoder[T comparable] struct {
	spec     Spec
	alphabet []T

	codes  *CodeGenerator
	table  [][]Token[T]
	prev   []Token[T]
	frozen bool
	ended  bool
}

// NewDecoder creates a decoder for the given spec and alphabet
func NewDecoder[T comparable](spec Spec, alphabet []T) (*Decoder[T], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	d := &Decoder[T]{
		spec:     spec,
		alphabet: slices.Clone(alphabet),
	}
	if err := d.reset(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Decoder[T]) reset() error {
	codes := d.spec.newGenerator()
	var table [][]Token[T]
	err := seed(d.spec, codes, d.alphabet, func(tok Token[T], _ Code) {
		table = append(table, []Token[T]{tok})
	})
	if err != nil {
		return err
	}

	d.codes, d.table = codes, table
	d.prev = nil
	d.frozen = false
	return nil
}

// Decode appends the symbols for codes to a new slice. Decoding stops at an
// End code; codes after it are ignored.
func (d *Decoder[T]) Decode(codes []Code) ([]T, error) {
	var out []T
	for i, c := range codes {
		if d.ended {
			break
		}
		seq, err := d.step(c.Value)
		if err != nil {
			return out, fmt.Errorf("code %d at position %d: %w", c.Value, i, err)
		}
		for _, tok := range seq {
			out = append(out, tok.Value)
		}
	}
	return out, nil
}

// step resolves one code and returns the payload tokens it stands for.
func (d *Decoder[T]) step(code uint32) ([]Token[T], error) {
	var cur []Token[T]
	switch {
	case int(code) < len(d.table):
		cur = d.table[code]
	case int(code) == len(d.table) && d.prev != nil && !d.frozen:
		// the entry the encoder just created: prev followed by its own first symbol
		cur = append(slices.Clone(d.prev), d.prev[0])
	default:
		return nil, ErrInvalidCode
	}

	if len(cur) == 1 && cur[0].IsControl() {
		switch cur[0].Kind {
		case KindClear:
			log.Debug().Int("entries", len(d.table)).Msg("Clear code received, rebuilding table")
			return nil, d.reset()
		case KindEnd:
			d.ended = true
			return nil, nil
		}
	}

	if d.prev != nil && !d.frozen {
		if err := d.add(append(slices.Clone(d.prev), cur[0])); err != nil {
			return nil, err
		}
	}
	d.prev = cur
	return cur, nil
}

func (d *Decoder[T]) add(seq []Token[T]) error {
	c, err := d.spec.allocate(d.codes)
	if isCodeSpaceExhausted(err) {
		d.frozen = true
		return nil
	}
	if err != nil {
		return err
	}
	if int(c.Value) != len(d.table) {
		panic(fmt.Sprintf("lzw: decoder table out of step: code %d, table size %d", c.Value, len(d.table)))
	}
	d.table = append(d.table, seq)
	return nil
}

// Decode is a convenience wrapper around a fresh Decoder
func Decode[T comparable](spec Spec, alphabet []T, codes []Code) ([]T, error) {
	d, err := NewDecoder(spec, alphabet)
	if err != nil {
		return nil, err
	}
	return d.Decode(codes)
}
