// Package config loads techstack settings from an optional project config
// file and TECHSTACK_* environment variables.
//
// Settings are looked up in this order, later sources winning:
//
//  1. Built-in defaults (see [Default])
//  2. .techstack.yaml, .techstack.yml, .techstack.toml or .techstack.json in
//     the project root
//  3. Environment variables, with dots replaced by underscores:
//     TECHSTACK_LOG_LEVEL, TECHSTACK_OUTPUT_FORMAT, TECHSTACK_OUTPUT_INDENT,
//     TECHSTACK_SCAN_EXCLUDE (comma separated)
//
// The file is optional. A file that exists but cannot be parsed or fails
// validation is reported as an [errors.ErrCodeInvalidConfig] error alongside
// the default configuration, so callers can warn and carry on.
package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/report"
)

// FileName is the base name of the project config file, without extension.
const FileName = ".techstack"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TECHSTACK"

// Config holds all runtime settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Scan   ScanConfig   `mapstructure:"scan"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// OutputConfig controls report serialization.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json or yaml
	Indent int    `mapstructure:"indent"`
}

// ScanConfig controls the source tree scan.
type ScanConfig struct {
	Exclude []string `mapstructure:"exclude"` // doublestar patterns, root-relative
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: string(report.FormatJSON), Indent: report.DefaultIndent},
		Scan:   ScanConfig{Exclude: []string{}},
	}
}

// Load reads the configuration for the project at root. It always returns
// a usable Config; a non-nil error means the project config was rejected
// and the defaults (with environment overrides) are in effect.
func Load(root string) (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	v.AddConfigPath(root)

	var fileErr error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fileErr = errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
			v = newViper()
		}
	}

	cfg, err := decode(v)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return Default(), err
	}
	if fileErr != nil {
		return cfg, fileErr
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.indent", d.Output.Indent)
	v.SetDefault("scan.exclude", d.Scan.Exclude)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if cfg.Scan.Exclude == nil {
		cfg.Scan.Exclude = []string{}
	}
	return &cfg, nil
}

// Validate checks every setting and normalizes the output format name.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.format")
	}
	c.Output.Format = string(format)
	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		return errors.New(errors.ErrCodeInvalidConfig, "output.indent must be between 0 and 16, got %d", c.Output.Indent)
	}
	for _, p := range c.Scan.Exclude {
		if !doublestar.ValidatePattern(p) {
			return errors.New(errors.ErrCodeInvalidConfig, "scan.exclude: invalid pattern %q", p)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to warn.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Format returns the parsed output format, defaulting to JSON.
func (c *Config) Format() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatJSON
	}
	return f
}
