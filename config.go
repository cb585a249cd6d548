package main

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional config.yaml next to the data files. Every field
// has a working default, so no config file is required at all.
type Config struct {
	DataDir       string `yaml:"data_dir"`
	FocusMinutes  int    `yaml:"focus_minutes"`
	Notifications bool   `yaml:"notifications"`
}

func defaultConfig() Config {
	return Config{
		FocusMinutes:  25,
		Notifications: true,
	}
}

func appDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(configDir, "task-app")
}

// loadConfig reads config.yaml from the app directory. A missing or broken
// file just means defaults; the session must never refuse to start over it.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(filepath.Join(appDir(), "config.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Warning: failed to parse config.yaml: %v. Using defaults.", err)
		return defaultConfig()
	}
	if cfg.FocusMinutes <= 0 {
		cfg.FocusMinutes = 25
	}
	return cfg
}

// dataDir is where the lists, log and export live; config.yaml can point it
// somewhere else (e.g. a synced folder).
func (c Config) dataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return appDir()
}
