package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "vitalog-client.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VITALOG_SERVER":    "https://api.example.com",
		"VITALOG_DB":        "/tmp/other.db",
		"VITALOG_LOG_LEVEL": "debug",
		"VITALOG_TIMEOUT":   "5s",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg, func(key string) string { return env[key] })

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestApplyEnv_InvalidTimeoutIgnored(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg, func(key string) string {
		if key == "VITALOG_TIMEOUT" {
			return "not-a-duration"
		}
		return ""
	})

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"server_url": "https://api.example.com",
		"request_timeout_seconds": 10,
		"log_level": "warn"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := &Config{}
	cfg.LoadDefaults()
	applyFile(cfg, path)

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	// fields absent from the file keep their defaults
	assert.Equal(t, "vitalog-client.db", cfg.DatabasePath)
}

func TestApplyFile_MissingOrMalformed(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	applyFile(cfg, filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	applyFile(cfg, path)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
}

func TestRegisterFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	registerFlags(cfg, fs)
	require.NoError(t, fs.Parse([]string{"-server", "https://flags.example.com", "-timeout", "3s"}))

	assert.Equal(t, "https://flags.example.com", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	// omitted flags keep the layered value
	assert.Equal(t, "vitalog-client.db", cfg.DatabasePath)
}
