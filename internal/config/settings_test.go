package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.Destination != DefaultDestination {
		t.Errorf("Destination = %q, want %q", s.Destination, DefaultDestination)
	}
	if s.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, DefaultLogLevel)
	}
	if s.NoColor || s.SkipWelcome || s.GitInit {
		t.Errorf("unexpected boolean defaults: %+v", s)
	}
	if s.File != "" {
		t.Errorf("File = %q, want empty when no settings file exists", s.File)
	}
	if s.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want warn", s.Level())
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".p2h.yaml", "destination: sites\nno_color: true\nlog_level: debug\ngit_init: true\n")

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.Destination != "sites" || !s.NoColor || !s.GitInit {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", s.Level())
	}
	if filepath.Base(s.File) != ".p2h.yaml" {
		t.Errorf("File = %q, want .p2h.yaml", s.File)
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".p2h.yaml", "log_level: debug\n")
	t.Setenv("P2H_LOG_LEVEL", "error")
	t.Setenv("P2H_SKIP_WELCOME", "true")

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want env value error", s.LogLevel)
	}
	if !s.SkipWelcome {
		t.Error("SkipWelcome = false, want env value true")
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("invalid_yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".p2h.yaml", "destination: [unclosed\n")
		_, err := LoadSettings(dir)
		if !errors.Is(err, ErrInvalidYAML) {
			t.Errorf("expected ErrInvalidYAML, got: %v", err)
		}
	})

	t.Run("invalid_log_level", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".p2h.yaml", "log_level: loud\n")
		_, err := LoadSettings(dir)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got: %v", err)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "log_level" {
			t.Errorf("expected log_level ValidationError, got: %v", err)
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelWarn, true},
		{"verbose", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	e := &ValidationError{Field: "log_level", Message: "bad", Value: "x", Wrapped: ErrInvalidConfig}
	want := `validation error: field "log_level": bad (got: x)`
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	e.Value = nil
	if e.Error() != `validation error: field "log_level": bad` {
		t.Errorf("Error() = %q", e.Error())
	}
}
