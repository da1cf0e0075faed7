package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging related configuration
type Config struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Configure sets up the global zerolog logger. Text output goes through the
// console writer; JSON output is written as-is.
func Configure(conf Config) error {
	return ConfigureOutput(conf, os.Stderr)
}

// ConfigureOutput is Configure with an explicit destination
func ConfigureOutput(conf Config, out io.Writer) error {
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", conf.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	if conf.Format == FormatJSON {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return nil
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	return nil
}
