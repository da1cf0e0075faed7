package lzw

import (
	"fmt"
	"strings"
)

// Alphabet names a starting symbol set for rune input
type Alphabet string

const (
	AlphabetASCII     Alphabet = "ascii"
	AlphabetLowercase Alphabet = "lowercase"
	AlphabetLatin1    Alphabet = "latin1"
)

const printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// ParseAlphabet resolves an alphabet name, ignoring case
func ParseAlphabet(name string) (Alphabet, error) {
	a := Alphabet(strings.ToLower(strings.TrimSpace(name)))
	switch a {
	case AlphabetASCII, AlphabetLowercase, AlphabetLatin1:
		return a, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownAlphabet)
	}
}

// Symbols returns the alphabet's symbols in code order
func (a Alphabet) Symbols() []rune {
	switch a {
	case AlphabetASCII:
		return []rune(printable)
	case AlphabetLowercase:
		return []rune("abcdefghijklmnopqrstuvwxyz")
	case AlphabetLatin1:
		symbols := make([]rune, 256)
		for i := range symbols {
			symbols[i] = rune(i)
		}
		return symbols
	default:
		return nil
	}
}
