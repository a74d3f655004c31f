package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pixel2html/p2h/internal/defs"
)

// Settings file and environment naming.
const (
	SettingsName = defs.SettingsBase
	EnvPrefix    = "P2H"
)

// Default setting values.
const (
	DefaultDestination = "."
	DefaultLogLevel    = "warn"
)

// Settings are the global, per-user options of p2h.
type Settings struct {
	Destination string `mapstructure:"destination"`
	NoColor     bool   `mapstructure:"no_color"`
	LogLevel    string `mapstructure:"log_level"`
	SkipWelcome bool   `mapstructure:"skip_welcome"`
	GitInit     bool   `mapstructure:"git_init"`

	// File is the settings file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LoadSettings reads .p2h.yaml from the given directories (the user's home
// directory and the working directory when none are given), overlays P2H_*
// environment variables and applies defaults. A missing file is not an error.
func LoadSettings(dirs ...string) (*Settings, error) {
	v := viper.New()

	if len(dirs) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home)
		}
		dirs = append(dirs, ".")
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetConfigName(SettingsName)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("destination", DefaultDestination)
	v.SetDefault("no_color", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("skip_welcome", false)
	v.SetDefault("git_init", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w: %v", ErrInvalidYAML, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Destination) == "" {
		return &ValidationError{Field: "destination", Message: "must not be empty", Wrapped: ErrInvalidConfig}
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level of LogLevel, falling back to warn.
func (s *Settings) Level() slog.Level {
	lvl, err := ParseLogLevel(s.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// ParseLogLevel maps debug, info, warn or error to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, &ValidationError{
			Field:   "log_level",
			Message: "must be one of debug, info, warn, error",
			Value:   s,
			Wrapped: ErrInvalidConfig,
		}
	}
	return lvl, nil
}
