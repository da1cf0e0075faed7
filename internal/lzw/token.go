package lzw

import "fmt"

// Kind distinguishes payload tokens from control tokens
type Kind uint8

const (
	// KindValue is a payload symbol
	KindValue Kind = iota
	// KindClear tells the decoder to rebuild its dictionary
	KindClear
	// KindEnd marks the end of the code stream
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindClear:
		return "clear"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is a dictionary symbol: either a payload value or one of the
// control tokens. Control tokens compare equal regardless of T's zero value.
type Token[T comparable] struct {
	Kind  Kind
	Value T
}

// Value wraps a payload symbol
func Value[T comparable](v T) Token[T] {
	return Token[T]{Kind: KindValue, Value: v}
}

// Clear returns the Clear control token
func Clear[T comparable]() Token[T] {
	return Token[T]{Kind: KindClear}
}

// End returns the End control token
func End[T comparable]() Token[T] {
	return Token[T]{Kind: KindEnd}
}

// IsControl reports whether t is a Clear or End token
func (t Token[T]) IsControl() bool {
	return t.Kind != KindValue
}

func (t Token[T]) String() string {
	if t.IsControl() {
		return "<" + t.Kind.String() + ">"
	}
	return fmt.Sprintf("%v", t.Value)
}

// Tokens wraps every payload symbol of values
func Tokens[T comparable](values []T) []Token[T] {
	tokens := make([]Token[T], len(values))
	for i, v := range values {
		tokens[i] = Value(v)
	}
	return tokens
}
