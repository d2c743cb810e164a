// Package config resolves the tool's settings from defaults, an optional
// YAML file, SOCIALPATH_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/dijkstra"
)

// EnvPrefix is prepended (with an underscore) to every environment key.
const EnvPrefix = "SOCIALPATH"

// Keys understood by Load. Flags use the same names with '-' for '_'.
const (
	KeyData       = "data"
	KeyWeight     = "weight"
	KeyDuplicates = "duplicates"
	KeyDirection  = "direction"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyStyled     = "styled"
)

var (
	ErrConfigFile    = errors.New("config: cannot read config file")
	ErrBadWeight     = errors.New("config: weight must be non-negative")
	ErrBadDuplicates = errors.New("config: duplicates must be 'overwrite' or 'parallel'")
	ErrBadDirection  = errors.New("config: direction must be 'bidirectional' or 'forward'")
	ErrBadLogLevel   = errors.New("config: log level must be 'debug', 'info', 'warn' or 'error'")
	ErrBadLogFormat  = errors.New("config: log format must be 'text' or 'json'")
)

// Config is the resolved configuration.
type Config struct {
	Data       string `mapstructure:"data"`
	Weight     int    `mapstructure:"weight"`
	Duplicates string `mapstructure:"duplicates"`
	Direction  string `mapstructure:"direction"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	Styled     bool   `mapstructure:"styled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Weight:     1,
		Duplicates: core.DuplicateOverwrite.String(),
		Direction:  dijkstra.Bidirectional.String(),
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// RegisterFlags adds one flag per key to fs, with Default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(flagName(KeyData), d.Data, "DOT edge-list file to load before running the command")
	fs.Int(flagName(KeyWeight), d.Weight, "weight given to every loaded edge")
	fs.String(flagName(KeyDuplicates), d.Duplicates, "repeated edge policy: overwrite or parallel")
	fs.String(flagName(KeyDirection), d.Direction, "edge traversal: bidirectional or forward")
	fs.String(flagName(KeyLogLevel), d.LogLevel, "log level: debug, info, warn or error")
	fs.String(flagName(KeyLogFormat), d.LogFormat, "log format: text or json")
	fs.Bool(flagName(KeyStyled), d.Styled, "render reports with colors")
}

// Load resolves the configuration into v. fsys backs the config file
// lookup (nil means the OS filesystem); path may be empty. flags, when
// non-nil, must have been populated by RegisterFlags.
func Load(v *viper.Viper, fsys afero.Fs, path string, flags *pflag.FlagSet) (Config, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	v.SetFs(fsys)

	d := Default()
	v.SetDefault(KeyData, d.Data)
	v.SetDefault(KeyWeight, d.Weight)
	v.SetDefault(KeyDuplicates, d.Duplicates)
	v.SetDefault(KeyDirection, d.Direction)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyStyled, d.Styled)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyData, KeyWeight, KeyDuplicates, KeyDirection, KeyLogLevel, KeyLogFormat, KeyStyled} {
			if f := flags.Lookup(flagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind --%s: %w", f.Name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	c.Duplicates = strings.ToLower(strings.TrimSpace(c.Duplicates))
	c.Direction = strings.ToLower(strings.TrimSpace(c.Direction))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Weight < 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, c.Weight)
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		return err
	}
	if _, err := c.TraversalDirection(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}

	return nil
}

// DuplicatePolicy maps Duplicates onto the graph policy.
func (c Config) DuplicatePolicy() (core.DuplicatePolicy, error) {
	switch c.Duplicates {
	case core.DuplicateOverwrite.String():
		return core.DuplicateOverwrite, nil
	case core.DuplicateParallel.String():
		return core.DuplicateParallel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDuplicates, c.Duplicates)
	}
}

// TraversalDirection maps Direction onto the engine option.
func (c Config) TraversalDirection() (dijkstra.Direction, error) {
	switch c.Direction {
	case dijkstra.Bidirectional.String():
		return dijkstra.Bidirectional, nil
	case dijkstra.Forward.String():
		return dijkstra.Forward, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDirection, c.Direction)
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
