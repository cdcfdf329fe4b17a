package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Terminal.Unicode != "auto" || cfg.Terminal.Width != "auto" {
		t.Errorf("terminal defaults = %+v, want auto/auto", cfg.Terminal)
	}
	if !cfg.Playback.Animate || cfg.Playback.DelayScale != 1.0 {
		t.Errorf("playback defaults = %+v", cfg.Playback)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Unicode != "auto" {
		t.Errorf("unicode = %q, want auto", cfg.Terminal.Unicode)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
terminal:
  unicode: "off"
  width: compact
  no_color: true
playback:
  animate: false
  delay_scale: 0.5
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Unicode != "off" || cfg.Terminal.Width != "compact" || !cfg.Terminal.NoColor {
		t.Errorf("terminal = %+v", cfg.Terminal)
	}
	if cfg.Playback.Animate || cfg.Playback.DelayScale != 0.5 {
		t.Errorf("playback = %+v", cfg.Playback)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, "terminal:\n  unicode: \"on\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Unicode != "on" {
		t.Errorf("unicode = %q, want on", cfg.Terminal.Unicode)
	}
	if cfg.Terminal.Width != "auto" || !cfg.Playback.Animate {
		t.Errorf("unset fields lost defaults: %+v %+v", cfg.Terminal, cfg.Playback)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadUnknownFieldsIgnoredWithWarning(t *testing.T) {
	path := writeConfig(t, "terminl:\n  unicode: \"on\"\nlogging:\n  level: warn\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Known fields survive the lenient re-parse; the typo is dropped.
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Terminal.Unicode != "auto" {
		t.Errorf("unicode = %q, want auto", cfg.Terminal.Unicode)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "terminal: [broken\n")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "terminal:\n  unicode: \"off\"\n")
	t.Setenv("MHT_UNICODE", "on")
	t.Setenv("MHT_WIDTH", "120")
	t.Setenv("MHT_NO_COLOR", "true")
	t.Setenv("MHT_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Unicode != "on" {
		t.Errorf("unicode = %q, want env override on", cfg.Terminal.Unicode)
	}
	if cfg.Terminal.Width != "120" {
		t.Errorf("width = %q, want 120", cfg.Terminal.Width)
	}
	if !cfg.Terminal.NoColor {
		t.Error("no_color env override not applied")
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("level = %q, want error", cfg.Logging.Level)
	}
}

func TestEnvUnsetLeavesFileValues(t *testing.T) {
	path := writeConfig(t, "playback:\n  delay_scale: 2.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Playback.DelayScale != 2.0 {
		t.Errorf("delay_scale = %g, want file value 2.0", cfg.Playback.DelayScale)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad unicode", func(c *Config) { c.Terminal.Unicode = "maybe" }, "terminal.unicode"},
		{"bad width", func(c *Config) { c.Terminal.Width = "huge" }, "terminal.width"},
		{"negative width", func(c *Config) { c.Terminal.Width = "-5" }, "terminal.width"},
		{"negative delay", func(c *Config) { c.Playback.DelayScale = -1 }, "playback.delay_scale"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Terminal.Unicode = "maybe"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"terminal.unicode", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %s", err, want)
		}
	}
}
