package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := DefaultConfig(tt.level, logFile)
			cfg.Console = false
			Init(cfg)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}

			for _, exp := range tt.expected {
				if !strings.Contains(string(content), exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(string(content), exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFields(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fields.log")

	cfg := DefaultConfig("info", logFile)
	cfg.Console = false
	Init(cfg)

	Info("overlay pass", zap.Int("drawn", 12), zap.Int("culled", 3))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "drawn") {
		t.Error("expected structured field in log output")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("debug", "/tmp/x.log")
	if cfg.Level != "debug" || cfg.File != "/tmp/x.log" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.Console {
		t.Error("expected console output by default")
	}
	if cfg.MaxSizeMB != 20 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation defaults: %+v", cfg)
	}
}

func TestUninitializedIsNoop(t *testing.T) {
	// Must not panic before Init.
	old := Log
	defer func() { Log = old }()
	Log = zap.NewNop()
	Info("harmless")
	Sync()
}
