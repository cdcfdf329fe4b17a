// Package config loads the optional YAML config file and applies
// environment overrides. Precedence, lowest to highest: built-in defaults,
// config file, MHT_* environment variables, CLI flags (applied by the
// caller after Load).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/logger"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/terminal"
)

var cfgLog = logger.New("config")

// Config is the full program configuration.
type Config struct {
	Terminal TerminalConfig `yaml:"terminal"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerminalConfig holds capability and rendering settings.
type TerminalConfig struct {
	// Unicode selects the art mode: auto, on, or off.
	Unicode string `yaml:"unicode"`
	// Width selects the layout width: auto, compact, standard, wide, or an
	// explicit column count.
	Width string `yaml:"width"`
	// NoColor disables styled output regardless of terminal support.
	NoColor bool `yaml:"no_color"`
}

// PlaybackConfig holds progress animation settings.
type PlaybackConfig struct {
	// Animate plays progress bars in real time when on a terminal.
	Animate bool `yaml:"animate"`
	// DelayScale multiplies every animation delay. Zero disables animation.
	DelayScale float64 `yaml:"delay_scale"`
}

// LoggingConfig holds diagnostics settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfigPath returns the default config file path (~/.mht/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".mht", "config.yaml")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Terminal: TerminalConfig{
			Unicode: "auto",
			Width:   "auto",
		},
		Playback: PlaybackConfig{
			Animate:    true,
			DelayScale: 1.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks all Config fields and returns a multi-error report.
// Call this AFTER CLI overrides have been applied, not during Load().
func (c *Config) Validate() error {
	var errs []string

	if _, err := terminal.ParseUnicodeMode(c.Terminal.Unicode); err != nil {
		errs = append(errs, fmt.Sprintf("terminal.unicode: %v", err))
	}
	if _, err := terminal.ParseWidthMode(c.Terminal.Width); err != nil {
		errs = append(errs, fmt.Sprintf("terminal.width: %v", err))
	}
	if c.Playback.DelayScale < 0 {
		errs = append(errs, fmt.Sprintf("playback.delay_scale: must be >= 0 (got %g)", c.Playback.DelayScale))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i, e := range errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e)
	}
	return errors.New(sb.String())
}

// isUnknownFieldError returns true if the error is from yaml.Decoder.KnownFields(true)
// detecting an unrecognized key (e.g. typo like "terminl:").
func isUnknownFieldError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found in type")
}

// Load reads configuration from a YAML file and applies MHT_* environment
// overrides. A missing file is not an error; defaults are returned.
// Load does NOT call Validate(): callers apply CLI overrides first, then
// call cfg.Validate() themselves.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, applyEnv(cfg)
		}
		return nil, err
	}

	// Strict decode first so typos surface as warnings rather than being
	// silently dropped.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		if isUnknownFieldError(err) {
			cfgLog.Warn("config has unknown fields (ignored): %v", err)
			cfg = DefaultConfig()
			if err2 := yaml.Unmarshal(data, cfg); err2 != nil {
				return nil, fmt.Errorf("config parse error: %w", err2)
			}
		} else {
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}

	return cfg, applyEnv(cfg)
}
