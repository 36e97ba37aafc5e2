package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymesh/session-gate/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "session-gate", cfg.Application.Name)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "file", cfg.Credentials.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Gate.SessionTTL)
	assert.Equal(t, []string{"/", "/dashboard"}, cfg.Gate.HomePaths)
	assert.NotEmpty(t, cfg.Credentials.File.Path)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
application:
  name: merchant-gate
http:
  address: ":9090"
  shutdownTimeout: 10s
identity:
  baseURL: https://api.example.com
  timeout: 3s
credentials:
  backend: valkey
  valkey:
    host: localhost:6379
    prefix: gate-test
gate:
  sessionTTL: 2m
  homePaths:
    - /
    - /home
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "merchant-gate", cfg.Application.Name)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "https://api.example.com", cfg.Identity.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Identity.Timeout)
	assert.Equal(t, "valkey", cfg.Credentials.Backend)
	assert.Equal(t, "localhost:6379", cfg.Credentials.ValKey.Host)
	assert.Equal(t, "gate-test", cfg.Credentials.ValKey.Prefix)
	assert.Equal(t, 2*time.Minute, cfg.Gate.SessionTTL)
	assert.Equal(t, []string{"/", "/home"}, cfg.Gate.HomePaths)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_GATE_API_URL", "https://api.override.example.com")
	t.Setenv("SESSION_GATE_HTTP_ADDR", ":7070")
	t.Setenv("SESSION_GATE_LOG_LEVEL", "debug")

	dir := writeConfig(t, `
identity:
  baseURL: https://api.example.com
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.override.example.com", cfg.Identity.BaseURL)
	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "http: [not a mapping")

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestGate_ApplyDefaults(t *testing.T) {
	g := config.Gate{}
	g.ApplyDefaults()

	assert.Equal(t, 5*time.Minute, g.SessionTTL)
	assert.Equal(t, []string{"/", "/dashboard"}, g.HomePaths)

	custom := config.Gate{
		SessionTTL: time.Minute,
		HomePaths:  []string{"/home"},
	}
	custom.ApplyDefaults()

	assert.Equal(t, time.Minute, custom.SessionTTL)
	assert.Equal(t, []string{"/home"}, custom.HomePaths)
}
