package lzw

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
)

// Code identifies a dictionary entry.
type Code struct {
	Value uint32 `json:"code"`

	// Width is the bit width in effect when the code was allocated. In
	// variable width mode a code emitted later, such as Clear, may have to
	// be written at the generator's current width instead.
	Width uint8 `json:"width"`
}

func (c Code) String() string {
	return fmt.Sprintf("Code(%d,%d)", c.Value, c.Width)
}

// MaxWidth is the widest code a CodeGenerator can produce.
const MaxWidth = 32

// CodeGenerator hands out strictly increasing codes starting at 0, bounded
// by the current bit width.
type CodeGenerator struct {
	current  uint64
	width    uint8
	maxWidth uint8
}

// NewCodeGenerator creates a generator with a fixed width
func NewCodeGenerator(width uint8) *CodeGenerator {
	return NewVariableCodeGenerator(width, width)
}

// NewVariableCodeGenerator creates a generator starting at width that may be
// widened up to maxWidth.
func NewVariableCodeGenerator(width, maxWidth uint8) *CodeGenerator {
	width = min(width, MaxWidth)
	return &CodeGenerator{
		width:    width,
		maxWidth: min(max(width, maxWidth), MaxWidth),
	}
}

// Next returns the next code, or ErrCodeSpaceExhausted once the counter no
// longer fits the current width.
func (g *CodeGenerator) Next() (Code, error) {
	if g.current>>g.width != 0 {
		log.Debug().Uint8("width", g.width).Msg("All codes for current code width already used")
		return Code{}, fmt.Errorf("width %d: %w", g.width, ErrCodeSpaceExhausted)
	}
	c := Code{Value: uint32(g.current), Width: g.width}
	g.current++
	return c, nil
}

// Widen grows the width by one bit. It returns false at the maximum width.
func (g *CodeGenerator) Widen() bool {
	if g.width >= g.maxWidth {
		return false
	}
	g.width++
	log.Debug().Uint8("width", g.width).Msg("Widened code width")
	return true
}

// Width returns the current code width
func (g *CodeGenerator) Width() uint8 {
	return g.width
}

// Peek returns the value the next successful call to Next would produce.
func (g *CodeGenerator) Peek() uint32 {
	return uint32(g.current)
}

// All returns the remaining codes as a sequence. It shares state with g, so
// codes taken from it are gone for later calls to Next.
func (g *CodeGenerator) All() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for {
			c, err := g.Next()
			if err != nil || !yield(c) {
				return
			}
		}
	}
}
