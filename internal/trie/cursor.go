package trie

import (
	"errors"
	"io"
)

// Stream is a caller-owned cursor over a sequence of symbols. Peek must not
// move the cursor; Next consumes the symbol Peek would return.
type Stream[K comparable] interface {
	Peek() (K, bool)
	Next() (K, bool)
}

// SliceCursor is a Stream over an in-memory slice.
type SliceCursor[K comparable] struct {
	items []K
	pos   int
}

// NewSliceCursor creates a cursor positioned at the start of items
func NewSliceCursor[K comparable](items []K) *SliceCursor[K] {
	return &SliceCursor[K]{items: items}
}

func (c *SliceCursor[K]) Peek() (K, bool) {
	if c.pos >= len(c.items) {
		var zero K
		return zero, false
	}
	return c.items[c.pos], true
}

func (c *SliceCursor[K]) Next() (K, bool) {
	k, ok := c.Peek()
	if ok {
		c.pos++
	}
	return k, ok
}

// Pos returns the number of symbols consumed so far.
func (c *SliceCursor[K]) Pos() int {
	return c.pos
}

// Remaining returns the symbols not yet consumed.
func (c *SliceCursor[K]) Remaining() []K {
	return c.items[c.pos:]
}

// RuneCursor is a Stream over an io.RuneReader. A read error ends the
// stream and is reported by Err.
type RuneCursor struct {
	r      io.RuneReader
	peeked rune
	ready  bool
	done   bool
	err    error
}

// NewRuneCursor creates a cursor reading runes from r
func NewRuneCursor(r io.RuneReader) *RuneCursor {
	return &RuneCursor{r: r}
}

func (c *RuneCursor) fill() {
	if c.ready || c.done {
		return
	}
	ch, _, err := c.r.ReadRune()
	if err != nil {
		c.done = true
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		return
	}
	c.peeked = ch
	c.ready = true
}

func (c *RuneCursor) Peek() (rune, bool) {
	c.fill()
	if !c.ready {
		return 0, false
	}
	return c.peeked, true
}

func (c *RuneCursor) Next() (rune, bool) {
	ch, ok := c.Peek()
	c.ready = false
	return ch, ok
}

// Err returns the first non-EOF error encountered while reading.
func (c *RuneCursor) Err() error {
	return c.err
}

// NewByteCursor creates a cursor that reports every byte of r as the rune
// with the same value, so any byte stream maps onto U+0000 to U+00FF.
func NewByteCursor(r io.ByteReader) *RuneCursor {
	return NewRuneCursor(byteRunes{r})
}

type byteRunes struct {
	r io.ByteReader
}

func (b byteRunes) ReadRune() (rune, int, error) {
	c, err := b.r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	return rune(c), 1, nil
}
