package lzw

import "errors"

var (
	// ErrCodeSpaceExhausted is returned when no code fits the configured width.
	ErrCodeSpaceExhausted = errors.New("code space exhausted")

	// ErrAlphabetTooLarge is returned when the alphabet and control codes do
	// not fit the starting width.
	ErrAlphabetTooLarge = errors.New("alphabet too large for starting code width")

	// ErrInvalidCode is returned by the decoder for a code it cannot resolve.
	ErrInvalidCode = errors.New("invalid code")

	// ErrUnknownAlphabet is returned by ParseAlphabet for an unsupported name.
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)
