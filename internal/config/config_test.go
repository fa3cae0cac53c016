package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sensitive {
		t.Error("Sensitive should default to false")
	}
	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.IgnoreFile != ".gitignore" {
		t.Errorf("IgnoreFile = %q, want %q", cfg.IgnoreFile, ".gitignore")
	}
}

// TestSensitiveEnvVar verifies the environment override
func TestSensitiveEnvVar(t *testing.T) {
	t.Setenv(SensitiveEnvVar, "")

	cfg := DefaultConfig()
	if !cfg.Sensitive {
		t.Error("Sensitive should be true when DRGREP_SENSITIVE_CASE is set")
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `sensitive: true
color: false
log_level: debug
ignore_file: .drgrepignore
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Sensitive {
		t.Error("Sensitive = false, want true")
	}
	if cfg.Color {
		t.Error("Color = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.IgnoreFile != ".drgrepignore" {
		t.Errorf("IgnoreFile = %q, want %q", cfg.IgnoreFile, ".drgrepignore")
	}
}

// TestLoadConfigMissingFile verifies defaults are returned without error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML is rejected
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("sensitive: [not a bool"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() should fail on malformed YAML")
	}
}

// TestLoadConfigInvalidLogLevel verifies log level validation
func TestLoadConfigInvalidLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() should reject an unknown log level")
	}
}

// TestLoadConfigFromDir verifies the default location is used
func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".drgrep"), 0755); err != nil {
		t.Fatal(err)
	}
	content := "log_level: warn\n"
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigPath), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}
