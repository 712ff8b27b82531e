package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 6060, cfg.Server.HTTPPort)
	assert.Equal(t, "nats", cfg.Queue.Type)
	assert.Equal(t, "vitalyze.observations", cfg.Stream.ObservationsSubject)
	assert.Equal(t, "vitalyze.reports", cfg.Stream.ReportsSubject)
	assert.Equal(t, 4, cfg.Stream.Workers)
	assert.False(t, cfg.Auth.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
server:
  http_port: 9090
engine:
  anomaly_sensitivity: 2.5
  smoothing_alpha: 0.4
auth:
  enabled: true
  api_keys:
    - 0123456789abcdef0123456789abcdef
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Auth.Enabled)
	assert.Len(t, cfg.Auth.APIKeys, 1)

	policy := cfg.Engine.Policy()
	assert.Equal(t, 2.5, policy.AnomalySensitivity)
	assert.Equal(t, 0.4, policy.SmoothingAlpha)
}

func TestEngineConfig_PolicyDefaults(t *testing.T) {
	var e EngineConfig

	policy := e.Policy()
	assert.Equal(t, 0.3, policy.SmoothingAlpha)
	assert.Equal(t, 2.0, policy.AnomalySensitivity)
	assert.Equal(t, 1.5, policy.ZScoreMultiplier)
}

func TestValidate_BadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.HTTPPort = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadAlpha(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.SmoothingAlpha = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}
