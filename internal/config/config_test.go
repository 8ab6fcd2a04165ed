package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/physview/pkg/overlay"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if !cfg.Overlay.Enabled {
		t.Error("expected overlay enabled by default")
	}
	if !cfg.Overlay.Global {
		t.Error("expected overlay global by default")
	}
	if cfg.Overlay.Scale != 32.0 {
		t.Errorf("expected scale 32.0, got %f", cfg.Overlay.Scale)
	}
	if len(cfg.Overlay.Mode) != 0 {
		t.Errorf("expected empty mode list (= all), got %v", cfg.Overlay.Mode)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "physview.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false

overlay:
  enabled: false
  global: false
  scale: 32.0
  axes_length: 14.0
  mode: [collider-shapes, rigid-body-axes]

logging:
  level: "debug"
  log_file: "overlay.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Overlay.Enabled {
		t.Error("expected overlay disabled")
	}
	if cfg.Overlay.Global {
		t.Error("expected global to be false")
	}
	if cfg.Overlay.Scale != 32.0 {
		t.Errorf("expected scale 32.0, got %f", cfg.Overlay.Scale)
	}
	if cfg.Overlay.AxesLength != 14.0 {
		t.Errorf("expected axes length 14.0, got %f", cfg.Overlay.AxesLength)
	}
	if len(cfg.Overlay.Mode) != 2 {
		t.Errorf("expected 2 mode entries, got %v", cfg.Overlay.Mode)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "overlay.log" {
		t.Errorf("expected log file 'overlay.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
overlay:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/physview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestOverlayOptions(t *testing.T) {
	oc := OverlayConfig{
		Enabled:    true,
		Global:     false,
		Scale:      32,
		AxesLength: 14,
		Mode:       []string{"collider-shapes", "contact-pairs"},
	}

	opts, err := oc.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if !opts.Enabled || opts.Global {
		t.Errorf("flags = {%v %v}, want {true false}", opts.Enabled, opts.Global)
	}
	if opts.Mode != overlay.ModeColliderShapes|overlay.ModeContactPairs {
		t.Errorf("mode = %v", opts.Mode)
	}
	if opts.Style.RigidBodyAxesLength != 14 {
		t.Errorf("axes length = %v, want 14", opts.Style.RigidBodyAxesLength)
	}

	// Zero axes length keeps the style default.
	oc.AxesLength = 0
	opts, err = oc.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Style.RigidBodyAxesLength != overlay.DefaultStyle().RigidBodyAxesLength {
		t.Errorf("axes length = %v, want style default", opts.Style.RigidBodyAxesLength)
	}

	oc.Mode = []string{"bogus"}
	if _, err := oc.Options(); err == nil {
		t.Error("expected error for unknown mode name")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "scale flag",
			setup: func() { *flagScale = 64 },
			verify: func(cfg *Config) {
				if cfg.Overlay.Scale != 64 {
					t.Errorf("expected scale 64, got %f", cfg.Overlay.Scale)
				}
			},
			teardown: func() { *flagScale = 0 },
		},
		{
			name:  "disabled flag",
			setup: func() { *flagDisabled = true },
			verify: func(cfg *Config) {
				if cfg.Overlay.Enabled {
					t.Error("expected overlay disabled")
				}
			},
			teardown: func() { *flagDisabled = false },
		},
		{
			name:  "no-global flag",
			setup: func() { *flagNoGlobal = true },
			verify: func(cfg *Config) {
				if cfg.Overlay.Global {
					t.Error("expected global to be false")
				}
			},
			teardown: func() { *flagNoGlobal = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "physview.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "physview.yaml")

	cfg := Default()
	cfg.Overlay.Scale = 48
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Overlay.Scale != 48 {
		t.Errorf("expected scale 48 after reload, got %f", loaded.Overlay.Scale)
	}
}
