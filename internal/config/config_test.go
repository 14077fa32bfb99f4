package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestMustLoadPath(t *testing.T) {
	path := writeConfig(t, `
env: dev
http:
  address: ":9090"
  allowed_origins:
    - "https://clinic.example.com"
auth:
  secret: "test-secret"
  token_ttl: 2h
signaling:
  heartbeat_interval: 10s
  send_buffer: 8
  stream_request_limit: 3
  stream_request_window: 5s
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://clinic.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Signaling.HeartbeatInterval)
	assert.Equal(t, 8, cfg.Signaling.SendBuffer)
	assert.Equal(t, 3, cfg.Signaling.StreamRequestLimit)
	assert.Equal(t, 5*time.Second, cfg.Signaling.StreamRequestWin)
}

func TestMustLoadPathDefaults(t *testing.T) {
	path := writeConfig(t, "env: local\n")

	cfg := MustLoadPath(path)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.NotEmpty(t, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 25*time.Second, cfg.Signaling.HeartbeatInterval)
	assert.Equal(t, 16, cfg.Signaling.SendBuffer)
	assert.Equal(t, 5, cfg.Signaling.StreamRequestLimit)
	assert.Equal(t, 10*time.Second, cfg.Signaling.StreamRequestWin)
}

func TestMustLoadPathMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
