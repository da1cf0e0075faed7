package lzw

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateWidths, Spec{})
	return v
}

// validateWidths checks MaxWidth against Width. MaxWidth is ignored in fixed
// width mode.
func validateWidths(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(Spec)
	if !ok || !s.VariableWidth {
		return
	}
	if s.MaxWidth < s.Width {
		sl.ReportError(s.MaxWidth, "MaxWidth", "max_width", "gtefield", "Width")
	}
}

// Spec describes how a dictionary assigns codes.
type Spec struct {
	// Width is the code width in bits, and the starting width when
	// VariableWidth is set.
	Width uint8 `json:"width" mapstructure:"width" validate:"gte=1,lte=32"`

	// VariableWidth lets codes grow by one bit at a time up to MaxWidth.
	VariableWidth bool `json:"variable_width" mapstructure:"variable_width"`

	// MaxWidth bounds growth in variable width mode. It must be at least
	// Width there and is ignored otherwise.
	MaxWidth uint8 `json:"max_width" mapstructure:"max_width" validate:"required_if=VariableWidth true,lte=32"`

	// ClearCode reserves a Clear entry. A full dictionary is then rebuilt
	// instead of frozen.
	ClearCode bool `json:"clear_code" mapstructure:"clear_code"`

	// EndCode reserves an End entry emitted after the last code.
	EndCode bool `json:"end_code" mapstructure:"end_code"`
}

// DefaultSpec matches a classic 12-bit LZW setup with both control codes.
func DefaultSpec() Spec {
	return Spec{
		Width:     12,
		MaxWidth:  12,
		ClearCode: true,
		EndCode:   true,
	}
}

// Validate checks the field constraints
func (s Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid lzw spec: %w", err)
	}
	return nil
}

func (s Spec) maxWidth() uint8 {
	if s.VariableWidth {
		return s.MaxWidth
	}
	return s.Width
}

// newGenerator creates a code generator for s
func (s Spec) newGenerator() *CodeGenerator {
	return NewVariableCodeGenerator(s.Width, s.maxWidth())
}

// allocate takes the next code from g, widening in variable width mode.
func (s Spec) allocate(g *CodeGenerator) (Code, error) {
	for {
		c, err := g.Next()
		if err == nil {
			return c, nil
		}
		if !s.VariableWidth || !g.Widen() {
			return Code{}, err
		}
	}
}
