package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Read     ReadConfig     `mapstructure:"read"`
	Pack     PackConfig     `mapstructure:"pack"`
	Wordlist WordlistConfig `mapstructure:"wordlist"`
	LogLevel string         `mapstructure:"log_level"`
}

// ReadConfig controls how CSV word lists are read.
type ReadConfig struct {
	// Cutoff ends a scan at the first weight below it. Only valid for
	// files sorted by descending weight.
	Cutoff float64 `mapstructure:"cutoff"`
	Lang   string  `mapstructure:"lang"`
}

type PackConfig struct {
	// Cutoff in centibels; must be <= 0.
	Cutoff int `mapstructure:"cutoff"`
}

type WordlistConfig struct {
	Cutoff float64 `mapstructure:"cutoff"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps each command-line flag to its config key.
var flagKeys = map[string]string{
	"read-cutoff":     "read.cutoff",
	"read-lang":       "read.lang",
	"pack-cutoff":     "pack.cutoff",
	"wordlist-cutoff": "wordlist.cutoff",
	"log-level":       "log_level",
}

func DefaultConfig() Config {
	return Config{
		Read: ReadConfig{
			Cutoff: 0,
			Lang:   "",
		},
		Pack: PackConfig{
			Cutoff: -600,
		},
		Wordlist: WordlistConfig{
			Cutoff: 1e-8,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Float64("read-cutoff", defaults.Read.Cutoff, "Stop reading a word list at the first weight below this (input must be sorted descending)")
	fs.String("read-lang", defaults.Read.Lang, "BCP 47 language tag for language-aware tokenization")
	fs.Int("pack-cutoff", defaults.Pack.Cutoff, "Drop tokens at or below this many centibels when packing")
	fs.Float64("wordlist-cutoff", defaults.Wordlist.Cutoff, "Smallest value written to a word list")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("WORDFREQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("wordfreq")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Read.Lang = NormalizeLang(cfg.Read.Lang)

	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	if c.Read.Cutoff < 0 {
		return fmt.Errorf("read.cutoff must be >= 0, got %v", c.Read.Cutoff)
	}

	if c.Pack.Cutoff > 0 {
		return fmt.Errorf("pack.cutoff must be <= 0 centibels, got %d", c.Pack.Cutoff)
	}

	if c.Wordlist.Cutoff < 0 {
		return fmt.Errorf("wordlist.cutoff must be >= 0, got %v", c.Wordlist.Cutoff)
	}

	if c.Read.Lang != "" {
		if err := ValidateLang(c.Read.Lang); err != nil {
			return err
		}
	}

	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("read.cutoff", c.Read.Cutoff)
	v.SetDefault("read.lang", c.Read.Lang)
	v.SetDefault("pack.cutoff", c.Pack.Cutoff)
	v.SetDefault("wordlist.cutoff", c.Wordlist.Cutoff)
	v.SetDefault("log_level", c.LogLevel)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	return nil
}
