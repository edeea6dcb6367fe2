package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_DisabledByDefault(t *testing.T) {
	logger, closer, err := newLogger("", "debug")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	defer closer.Close()

	if logger.IsDebug() {
		t.Error("Expected a null logger without a path")
	}
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closer, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("Test log message", "key", "value")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log file to contain content")
	}
	if got := string(data); !strings.Contains(got, "Test log message") || strings.Contains(got, "hidden") {
		t.Errorf("Unexpected log content %q", got)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, _, err := newLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("Expected error for an unknown level")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[menu]\nborder = { fg = \"red\" }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme failed: %v", err)
	}
	if theme.Set("menu", nil) == nil {
		t.Error("Expected menu set")
	}

	if _, err := loadTheme(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for an explicit missing theme")
	}
}
