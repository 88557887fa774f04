package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"greenscore/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := writeConfigFile(t, "greenscore-test", `
env:
  serviceName: greenscore
  log:
    level: info
http:
  port: 8000
  timeouts:
    requestTimeout: 5s
store:
  driver: sqlite
  sqlite:
    path: test.db
`)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("greenscore-test")
	require.NoError(t, err)

	assert.Equal(t, "greenscore", cfg.Env.ServiceName)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
	assert.Equal(t, "test.db", cfg.Store.SQLite.Path)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("sqlite driver fills defaults", func(t *testing.T) {
		cfg := &Config{Redis: &RedisConfig{URL: "redis://localhost:6379/0"}}
		cfg.Store.Driver = "SQLite"
		cfg.Store.SQLite.Path = "greenscore.db"

		require.NoError(t, applyDefaults(cfg))
		assert.Equal(t, constants.StoreDriverSQLite, cfg.Store.Driver)
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, defaultMetricsNamespace, cfg.Metrics.Namespace)
		assert.Equal(t, defaultIdempotencyTTL, cfg.Redis.IdempotencyTTL)
		assert.Equal(t, defaultSlowQueryThreshold, cfg.Store.SlowQueryThreshold)
	})

	t.Run("sqlite driver requires a path", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = constants.StoreDriverSQLite

		assert.Error(t, applyDefaults(cfg))
	})

	t.Run("postgres is the default driver and needs its section", func(t *testing.T) {
		cfg := &Config{}

		err := applyDefaults(cfg)
		require.Error(t, err)
		assert.Equal(t, constants.StoreDriverPostgres, cfg.Store.Driver)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = "mongo"

		assert.Error(t, applyDefaults(cfg))
	})
}
