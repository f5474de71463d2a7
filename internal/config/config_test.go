package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Listener.Host)
	assert.Equal(t, 1000, cfg.Listener.ChannelSize)
	assert.Equal(t, time.Duration(0), cfg.TemplateTTL())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Host)
	assert.Equal(t, 100000, cfg.Store.MaxFlows)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listener:
  host: 127.0.0.1:2055
  channel_size: 64
  template_ttl_seconds: 1800
log:
  level: debug
metrics:
  host: 127.0.0.1:9090
store:
  max_flows: 500
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2055", cfg.Listener.Host)
	assert.Equal(t, 64, cfg.Listener.ChannelSize)
	assert.Equal(t, 30*time.Minute, cfg.TemplateTTL())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Host)
	assert.Equal(t, 500, cfg.Store.MaxFlows)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_LISTENER_HOST", "0.0.0.0:2055")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_LISTENER_TEMPLATE_TTL_SECONDS", "60")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:2055", cfg.Listener.Host)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.TemplateTTL())
}

func TestBadEnvValue(t *testing.T) {
	t.Setenv("APP_LISTENER_CHANNEL_SIZE", "many")

	_, err := Load("")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
