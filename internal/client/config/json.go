package config

import (
	"encoding/json"
	"os"
	"time"
)

// fileConfig is the JSON shape of the config file. The timeout is expressed
// in seconds to keep the file hand-editable.
type fileConfig struct {
	ServerURL      string `json:"server_url"`
	DatabasePath   string `json:"database_path"`
	TimeoutSeconds int    `json:"request_timeout_seconds"`
	LogLevel       string `json:"log_level"`
}

// applyFile overlays values from the JSON file at path. A missing or
// malformed file is ignored; configuration must not prevent startup.
func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
