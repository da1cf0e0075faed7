package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/lzw-trie/internal/logging"
	"github.com/kumarlokesh/lzw-trie/internal/lzw"
)

const envPrefix = "LZWTRIE"

// Config holds all configuration for the application
type Config struct {
	LZW LZWConfig      `mapstructure:"lzw"`
	Log logging.Config `mapstructure:"log"`
}

// LZWConfig holds dictionary related configuration
type LZWConfig struct {
	lzw.Spec `mapstructure:",squash"`

	Alphabet string `mapstructure:"alphabet" validate:"required"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	spec := lzw.DefaultSpec()

	v.SetDefault("lzw.alphabet", string(lzw.AlphabetLatin1))
	v.SetDefault("lzw.width", spec.Width)
	v.SetDefault("lzw.variable_width", spec.VariableWidth)
	v.SetDefault("lzw.max_width", spec.MaxWidth)
	v.SetDefault("lzw.clear_code", spec.ClearCode)
	v.SetDefault("lzw.end_code", spec.EndCode)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := c.LZW.Spec.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := lzw.ParseAlphabet(c.LZW.Alphabet); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Symbols returns the configured alphabet's symbols
func (c *LZWConfig) Symbols() ([]rune, error) {
	a, err := lzw.ParseAlphabet(c.Alphabet)
	if err != nil {
		return nil, err
	}
	return a.Symbols(), nil
}
