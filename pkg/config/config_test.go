package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	configDir := GetConfigDir()
	expectedDir := filepath.Join(tempDir, "custom", "path")

	if configDir != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, configDir)
	}
}

// TestConfigDirectoryCreation validates directory is created
func TestConfigDirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "new", "config", "location", "config.toml")

	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if _, err := os.Stat(GetConfigDir()); err != nil {
		t.Fatalf("Config directory was not created: %v", err)
	}
}

// TestGetString validates string configuration retrieval
func TestGetString(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	format := GetString("output.format")
	if format != "text" {
		t.Errorf("Expected default format 'text', got '%s'", format)
	}

	platform := GetString("defaults.platform")
	if platform != "linkedin" {
		t.Errorf("Expected default platform 'linkedin', got '%s'", platform)
	}
}

// TestGetInt validates integer configuration retrieval
func TestGetInt(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timeout := GetInt("research.timeout")
	if timeout != 15 {
		t.Errorf("Expected default research timeout 15, got %d", timeout)
	}

	maxChars := GetInt("research.max_chars")
	if maxChars != 12000 {
		t.Errorf("Expected default max chars 12000, got %d", maxChars)
	}
}

// TestSetOverridesDefault validates process-level overrides
func TestSetOverridesDefault(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	Set("output.format", "json")
	if got := GetString("output.format"); got != "json" {
		t.Errorf("Expected overridden format 'json', got '%s'", got)
	}
	Set("output.format", "text")
}

// TestDataDirCreation validates the data directory is created on demand
func TestDataDirCreation(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}
	Set("data.dir", filepath.Join(tempDir, "data"))

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Data directory was not created: %v", err)
	}
}

// TestExpandPath validates tilde expansion
func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	expanded := expandPath("~/exports")
	if expanded != filepath.Join(home, "exports") {
		t.Errorf("Expected %s, got %s", filepath.Join(home, "exports"), expanded)
	}

	plain := expandPath("/var/data")
	if plain != "/var/data" {
		t.Errorf("Absolute path should pass through, got %s", plain)
	}
}
