// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/physview/pkg/overlay"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// OverlayConfig holds the debug-overlay defaults.
type OverlayConfig struct {
	Enabled bool `yaml:"enabled"`
	Global  bool `yaml:"global"`
	// Scale is the display-units-per-physics-unit factor.
	Scale float32 `yaml:"scale"`
	// AxesLength is the rendered rigid-body axes length in display
	// units; 0 keeps the style default.
	AxesLength float32 `yaml:"axes_length"`
	// Mode lists rendered categories by name; empty means all.
	Mode []string `yaml:"mode"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			Global:  true,
			// Pixels per physics meter for the 2D viewer.
			Scale: 32.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the overlay section into startup options for the
// overlay package.
func (c OverlayConfig) Options() (overlay.Options, error) {
	mode, err := overlay.ParseMode(c.Mode)
	if err != nil {
		return overlay.Options{}, err
	}
	opts := overlay.Options{
		Enabled: c.Enabled,
		Global:  c.Global,
		Style:   overlay.DefaultStyle(),
		Mode:    mode,
	}
	if c.AxesLength > 0 {
		opts.Style.RigidBodyAxesLength = c.AxesLength
	}
	return opts, nil
}
