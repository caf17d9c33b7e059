// Package config holds the runtime settings of the vitalog CLI.
//
// Values are layered: defaults, then the JSON config file (path in the
// VITALOG_CONFIG environment variable), then VITALOG_* environment
// variables, then command-line flags. Later sources take precedence.
package config

import (
	"flag"
	"os"
	"time"
)

// Config holds runtime settings for the vitalog CLI.
type Config struct {
	// ServerURL is the base address of the remote backend.
	ServerURL string
	// DatabasePath is the local BoltDB file holding the session.
	DatabasePath string
	// RequestTimeout bounds every HTTP request.
	RequestTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.DatabasePath = "vitalog-client.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// Load constructs a Config, applies defaults, then overlays the JSON file,
// environment variables and command-line flags. Calls flag.Parse, so the
// remaining arguments are available via flag.Args.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := os.Getenv("VITALOG_CONFIG"); path != "" {
		applyFile(cfg, path)
	}
	applyEnv(cfg, os.Getenv)

	registerFlags(cfg, flag.CommandLine)
	flag.Parse()

	return cfg
}

// applyEnv overlays VITALOG_* environment variables. getenv is injected for
// testing.
func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("VITALOG_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := getenv("VITALOG_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv("VITALOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("VITALOG_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}

// registerFlags declares the flags with the already-layered values as
// defaults, so an omitted flag keeps the lower-precedence value.
func registerFlags(cfg *Config, fs *flag.FlagSet) {
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server base URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "Path to local database")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "HTTP request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}
