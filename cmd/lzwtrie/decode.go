package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kumarlokesh/lzw-trie/internal/lzw"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode LZW codes back into text",
		Long: "Decode reads codes as printed by encode, either whitespace separated values " +
			"or a JSON document. Settings stored in a JSON document take precedence over " +
			"the configuration.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			doc, withSettings, err := readCodes(in)
			if err != nil {
				return err
			}

			spec, alphabetName := a.cfg.LZW.Spec, a.cfg.LZW.Alphabet
			if withSettings {
				spec, alphabetName = doc.Spec, doc.Alphabet
			}

			alphabet, err := lzw.ParseAlphabet(alphabetName)
			if err != nil {
				return err
			}

			log.Debug().
				Str("alphabet", alphabetName).
				Int("codes", len(doc.Codes)).
				Msg("Decoding")

			decoded, err := lzw.Decode(spec, alphabet.Symbols(), doc.Codes)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(decodedBytes(alphabetName, decoded))
			return err
		},
	}
}

// decodedBytes undoes the input mapping used by encode: latin1 symbols are
// raw bytes, every other alphabet is UTF-8 text.
func decodedBytes(alphabetName string, decoded []rune) []byte {
	if !isByteAlphabet(alphabetName) {
		return []byte(string(decoded))
	}

	out := make([]byte, len(decoded))
	for i, r := range decoded {
		out[i] = byte(r)
	}
	return out
}
