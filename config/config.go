// Package config resolves keyhint settings with Viper, using the precedence
// flags > env (KEYHINT_*) > defaults, and rejects bad values up front.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/markovic-nikola/keyhint/keysym"
)

// Config holds all application configuration.
type Config struct {
	Platform      string `mapstructure:"platform"`        // auto, macos or other
	LogFile       string `mapstructure:"log_file"`        // empty disables logging
	LogLevel      string `mapstructure:"log_level"`       // debug, info, warn, error
	NoUpdateCheck bool   `mapstructure:"no_update_check"` // skip the release check after the TUI exits
}

// Default configuration values.
const (
	DefaultPlatform = "auto"
	DefaultLogLevel = "info"
)

type contextKey struct{}

// FromContext retrieves Config from context.
func FromContext(ctx context.Context) (Config, bool) {
	cfg, ok := ctx.Value(contextKey{}).(Config)
	return cfg, ok
}

// WithContext stores Config in context.
func WithContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// Load builds a Config from the command's flags (and its parents'), the
// environment and the defaults.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KEYHINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("platform", DefaultPlatform)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("no_update_check", false)

	for c := cmd; c != nil; c = c.Parent() {
		bindFlagSet(v, c.Flags())
		bindFlagSet(v, c.PersistentFlags())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Flag names use dashes, config keys use underscores.
func bindFlagSet(v *viper.Viper, fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// Validate fails fast on values the rest of the program can't use.
func (c Config) Validate() error {
	if _, _, err := keysym.ParsePlatform(c.Platform); err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ResolvePlatform turns the configured platform into a keysym.Platform,
// detecting it from the running OS for "auto".
func (c Config) ResolvePlatform() keysym.Platform {
	p, auto, err := keysym.ParsePlatform(c.Platform)
	if err != nil || auto {
		return keysym.Detect()
	}
	return p
}

func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
