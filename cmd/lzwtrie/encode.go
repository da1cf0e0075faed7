package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kumarlokesh/lzw-trie/internal/lzw"
	"github.com/kumarlokesh/lzw-trie/internal/trie"
)

const (
	flagText   = "text"
	flagOutput = "output"
)

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode text into LZW codes",
		Long: "Encode reads the file argument, the --text literal or standard input and " +
			"prints the emitted codes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			enc, reg, err := a.newEncoder()
			if err != nil {
				return err
			}

			codes, err := enc.Encode(lzw.Values[rune](a.cursor(in)))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			logMetrics(reg)

			format, _ := cmd.Flags().GetString(flagOutput)
			return writeCodes(cmd.OutOrStdout(), format, document{
				Alphabet: a.cfg.LZW.Alphabet,
				Spec:     a.cfg.LZW.Spec,
				Codes:    codes,
			})
		},
	}

	cmd.Flags().StringP(flagText, "t", "", "Encode this literal instead of reading input")
	cmd.Flags().StringP(flagOutput, "o", formatText, "Output format (text, json)")

	return cmd
}

// newEncoder builds an encoder over a fresh dictionary with its own metrics
// registry.
func (a *app) newEncoder() (*lzw.Encoder[rune], *prometheus.Registry, error) {
	symbols, err := a.cfg.LZW.Symbols()
	if err != nil {
		return nil, nil, err
	}

	dict, err := lzw.NewDictionary(a.cfg.LZW.Spec, symbols)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	return lzw.NewEncoder(dict, lzw.NewMetrics(reg)), reg, nil
}

// cursor reads in as UTF-8 runes, or byte by byte for the latin1 alphabet
func (a *app) cursor(in io.Reader) *trie.RuneCursor {
	if isByteAlphabet(a.cfg.LZW.Alphabet) {
		return trie.NewByteCursor(bufio.NewReader(in))
	}
	return trie.NewRuneCursor(bufio.NewReader(in))
}

func isByteAlphabet(name string) bool {
	alphabet, err := lzw.ParseAlphabet(name)
	return err == nil && alphabet == lzw.AlphabetLatin1
}

// openInput picks the --text literal, the file argument or standard input,
// in that order.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if cmd.Flags().Changed(flagText) {
		text, _ := cmd.Flags().GetString(flagText)
		return strings.NewReader(text), func() {}, nil
	}

	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// logMetrics writes a one line summary of every gathered metric
func logMetrics(reg *prometheus.Registry) {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}

	families, err := reg.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to gather metrics")
		return
	}

	dict := zerolog.Dict()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				dict.Float64(mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				dict.Float64(mf.GetName(), m.GetGauge().GetValue())
			}
		}
	}
	log.Debug().Dict("metrics", dict).Msg("Encoding finished")
}
