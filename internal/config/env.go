package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides mirrors the Config fields that may be set from the
// environment. Pointer fields stay nil when the variable is unset, so only
// variables the user actually exported override the file.
type envOverrides struct {
	// MHT_UNICODE: auto|on|off
	Unicode *string `envconfig:"UNICODE"`
	// MHT_WIDTH: auto|compact|standard|wide|<columns>
	Width *string `envconfig:"WIDTH"`
	// MHT_NO_COLOR: true|false
	NoColor *bool `envconfig:"NO_COLOR"`
	// MHT_ANIMATE: true|false
	Animate *bool `envconfig:"ANIMATE"`
	// MHT_DELAY_SCALE: animation delay multiplier
	DelayScale *float64 `envconfig:"DELAY_SCALE"`
	// MHT_LOG_LEVEL: trace|debug|info|warn|error
	LogLevel *string `envconfig:"LOG_LEVEL"`
}

// applyEnv overlays MHT_* environment variables on cfg.
func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := envconfig.Process("mht", &o); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	if o.Unicode != nil {
		cfg.Terminal.Unicode = *o.Unicode
	}
	if o.Width != nil {
		cfg.Terminal.Width = *o.Width
	}
	if o.NoColor != nil {
		cfg.Terminal.NoColor = *o.NoColor
	}
	if o.Animate != nil {
		cfg.Playback.Animate = *o.Animate
	}
	if o.DelayScale != nil {
		cfg.Playback.DelayScale = *o.DelayScale
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
	return nil
}
