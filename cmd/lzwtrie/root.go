package main

import (
	"github.com/spf13/cobra"

	"github.com/kumarlokesh/lzw-trie/internal/config"
	"github.com/kumarlokesh/lzw-trie/internal/logging"
)

// nolint: gochecknoglobals
var Version = "dev"

const (
	flagConfig        = "config"
	flagAlphabet      = "alphabet"
	flagWidth         = "width"
	flagVariableWidth = "variable-width"
	flagMaxWidth      = "max-width"
	flagClearCode     = "clear-code"
	flagEndCode       = "end-code"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
)

// app carries state shared between the root command and its subcommands
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lzwtrie",
		Short:         "LZW dictionary coding over a mutable prefix trie",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "Config file")
	flags.StringP(flagAlphabet, "a", "", "Initial alphabet (ascii, lowercase, latin1). latin1 reads input as raw bytes, the others as UTF-8 runes")
	flags.Uint8P(flagWidth, "w", 0, "Code width in bits")
	flags.Bool(flagVariableWidth, false, "Grow the code width as the dictionary fills")
	flags.Uint8(flagMaxWidth, 0, "Maximum code width in variable width mode")
	flags.Bool(flagClearCode, false, "Reserve a Clear code and rebuild the dictionary when full")
	flags.Bool(flagEndCode, false, "Reserve an End code emitted after the last code")
	flags.String(flagLogLevel, "", "Log level")
	flags.String(flagLogFormat, "", "Log format (text, json)")

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newDictCmd(a),
	)

	return cmd
}

// load reads the configuration, applies flag overrides and sets up logging
func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, _ := flags.GetString(flagConfig)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	if flags.Changed(flagAlphabet) {
		cfg.LZW.Alphabet, _ = flags.GetString(flagAlphabet)
	}
	if flags.Changed(flagWidth) {
		cfg.LZW.Width, _ = flags.GetUint8(flagWidth)
	}
	if flags.Changed(flagVariableWidth) {
		cfg.LZW.VariableWidth, _ = flags.GetBool(flagVariableWidth)
	}
	if flags.Changed(flagMaxWidth) {
		cfg.LZW.MaxWidth, _ = flags.GetUint8(flagMaxWidth)
	}
	if flags.Changed(flagClearCode) {
		cfg.LZW.ClearCode, _ = flags.GetBool(flagClearCode)
	}
	if flags.Changed(flagEndCode) {
		cfg.LZW.EndCode, _ = flags.GetBool(flagEndCode)
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagLogFormat) {
		cfg.Log.Format, _ = flags.GetString(flagLogFormat)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.ConfigureOutput(cfg.Log, cmd.ErrOrStderr()); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}
