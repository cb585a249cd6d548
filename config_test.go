package main

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.FocusMinutes != 25 {
		t.Errorf("Expected 25 focus minutes, got %d", cfg.FocusMinutes)
	}
	if !cfg.Notifications {
		t.Error("Notifications should default to on")
	}
	if cfg.dataDir() == "" {
		t.Error("dataDir must never be empty")
	}
}

func TestConfigDataDirOverride(t *testing.T) {
	cfg := defaultConfig()
	cfg.DataDir = "/tmp/elsewhere"
	if cfg.dataDir() != "/tmp/elsewhere" {
		t.Errorf("Override ignored: %q", cfg.dataDir())
	}
}
