package logger

import (
	"path/filepath"
	"testing"

	"github.com/tgbotosho/content-engine/pkg/config"
)

func TestLoggerFunctions_NoNilPointers(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logger function panicked: %v", r)
		}
	}()

	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
	config.Set("log.file", filepath.Join(tempDir, "test.log"))
	Init(false)

	// Test logger functions (excluding Fatal which exits)
	Debug("test debug", "key", "value")
	Info("test info", "key", "value")
	Warn("test warn", "key", "value")
	Error("test error", "key", "value")

	// Test with no key-value pairs
	Debug("message only")
	Info("message only")
	Warn("message only")
	Error("message only")
}

func TestGetLogger(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
	config.Set("log.file", filepath.Join(tempDir, "test.log"))
	Init(true)

	if GetLogger() == nil {
		t.Error("GetLogger returned nil after Init")
	}
}
