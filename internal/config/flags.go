package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagScale    = flag.Float64("scale", 0, "Display units per physics unit")
	flagDisabled = flag.Bool("disabled", false, "Start with the overlay off")
	flagNoGlobal = flag.Bool("no-global", false, "Draw only opted-in colliders")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.Overlay.Scale = float32(*flagScale)
	}
	if *flagDisabled {
		cfg.Overlay.Enabled = false
	}
	if *flagNoGlobal {
		cfg.Overlay.Global = false
	}
}
