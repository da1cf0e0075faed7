package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kumarlokesh/lzw-trie/internal/lzw"
)

// dictEntry is the printable form of a dictionary entry
type dictEntry struct {
	Code     uint32 `json:"code"`
	Width    uint8  `json:"width"`
	Sequence string `json:"sequence"`
}

func newDictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict [file]",
		Short: "Print the dictionary built while encoding the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			enc, _, err := a.newEncoder()
			if err != nil {
				return err
			}
			if _, err := enc.Encode(lzw.Values[rune](a.cursor(in))); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			entries := enc.Dictionary().Entries()
			out := make([]dictEntry, len(entries))
			for i, e := range entries {
				out[i] = dictEntry{
					Code:     e.Code.Value,
					Width:    e.Code.Width,
					Sequence: renderSequence(e.Sequence),
				}
			}

			format, _ := cmd.Flags().GetString(flagOutput)
			switch format {
			case formatJSON:
				je := json.NewEncoder(cmd.OutOrStdout())
				je.SetIndent("", "  ")
				return je.Encode(out)
			case formatText:
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tWIDTH\tSEQUENCE")
				for _, e := range out {
					fmt.Fprintf(tw, "%d\t%d\t%s\n", e.Code, e.Width, e.Sequence)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unsupported output format %q", format)
			}
		},
	}

	cmd.Flags().StringP(flagText, "t", "", "Encode this literal instead of reading input")
	cmd.Flags().StringP(flagOutput, "o", formatText, "Output format (text, json)")

	return cmd
}

// renderSequence quotes payload runes and spells out control entries
func renderSequence(seq []lzw.Token[rune]) string {
	if len(seq) == 1 && seq[0].IsControl() {
		return seq[0].String()
	}

	var sb strings.Builder
	for _, tok := range seq {
		sb.WriteRune(tok.Value)
	}
	return strconv.Quote(sb.String())
}
