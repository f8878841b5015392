// ============================================================================
// SportsPA - Member and facility manager
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML with
//              SPORTSPA_* environment overrides
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SPORTSPA"

// EnvConfigPath names the variable that points at the config file
const EnvConfigPath = EnvPrefix + "_CONFIG"

var validate = validator.New()

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general" envconfig:"GENERAL"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" envconfig:"LOG"`
	CLI     CLIConfig     `toml:"cli" yaml:"cli" envconfig:"CLI"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name" envconfig:"NAME" validate:"required"`
	Environment string `toml:"environment" yaml:"environment" envconfig:"ENVIRONMENT" validate:"oneof=development production test"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error fatal"`
	Format string `toml:"format" yaml:"format" envconfig:"FORMAT" validate:"oneof=json text console logfmt"`
	// Output is stderr, stdout or a file path
	Output string `toml:"output" yaml:"output" envconfig:"OUTPUT" validate:"required"`
	Caller bool   `toml:"caller" yaml:"caller" envconfig:"CALLER"`
}

// CLIConfig holds settings of the interactive shell
type CLIConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt" envconfig:"PROMPT" validate:"required"`
	Color  bool   `toml:"color" yaml:"color" envconfig:"COLOR"`
	// SlowCommand is the execution time above which a command is logged at warn
	SlowCommand Duration `toml:"slow_command" yaml:"slow_command" envconfig:"SLOW_COMMAND"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{CLI: CLIConfig{Color: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Environment overrides are applied after the file and defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, spaerror.Newf("config file not found: %s", path).
				WithCode(spaerror.CodeConfigError).
				WithDetail("path", path)
		}
		return nil, spaerror.Wrap(err, "failed to read config").WithCode(spaerror.CodeConfigError)
	}

	cfg := &Config{CLI: CLIConfig{Color: true}}
	if err := decode(content, path, cfg); err != nil {
		return nil, spaerror.Wrap(err, "failed to parse config").
			WithCode(spaerror.CodeConfigError).
			WithDetail("path", path)
	}

	return finish(cfg)
}

// LoadFromEnv loads the file named by SPORTSPA_CONFIG or the first file found
// in the default locations. Without a file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return finish(&Config{CLI: CLIConfig{Color: true}})
}

// SearchPaths returns the default config file locations in lookup order
func SearchPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sportspa", "config.toml"))
	}
	return paths
}

func decode(content []byte, path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		meta, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return spaerror.Newf("unknown config key: %s", undecoded[0].String())
		}
		return nil
	}
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, spaerror.Wrap(err, "invalid environment override").WithCode(spaerror.CodeConfigError)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "SportsPA"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}

	if c.CLI.Prompt == "" {
		c.CLI.Prompt = "> "
	}
	if c.CLI.SlowCommand.Duration == 0 {
		c.CLI.SlowCommand.Duration = 250 * time.Millisecond
	}
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		result := spaerror.Wrap(err, "invalid configuration").WithCode(spaerror.CodeInvalidConfig)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			result = result.WithDetail("field", fieldErrs[0].Namespace())
		}
		return result
	}
	return nil
}
