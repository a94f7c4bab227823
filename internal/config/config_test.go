package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "testdata/gazetteer.json", cfg.GazetteerPath)
	assert.Empty(t, cfg.HydrographyPath)
	assert.Equal(t, "manual_override.json", cfg.OverridePath)
	assert.Empty(t, cfg.CacheTable)
	assert.Equal(t, 3, cfg.MinTokenScore)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.Equal(t, 1000, cfg.CacheLRUSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")
	t.Setenv("HYDROGRAPHY_PATH", "testdata/hydro.json")
	t.Setenv("OVERRIDE_PATH", "testdata/overrides.json")
	t.Setenv("CACHE_TABLE", "lake-match-cache")
	t.Setenv("MIN_TOKEN_SCORE", "5")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("CACHE_LRU_SIZE", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "testdata/gazetteer.json", cfg.GazetteerPath)
	assert.Equal(t, "testdata/hydro.json", cfg.HydrographyPath)
	assert.Equal(t, "testdata/overrides.json", cfg.OverridePath)
	assert.Equal(t, "lake-match-cache", cfg.CacheTable)
	assert.Equal(t, 5, cfg.MinTokenScore)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, 500, cfg.CacheLRUSize)
}

func TestLoad_RequiresGazetteerPath(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAZETTEER_PATH")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidMinTokenScore(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")
	t.Setenv("MIN_TOKEN_SCORE", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIN_TOKEN_SCORE")
}

func TestLoad_InvalidCacheLRUSize(t *testing.T) {
	t.Setenv("GAZETTEER_PATH", "testdata/gazetteer.json")
	t.Setenv("CACHE_LRU_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_LRU_SIZE")
}

func TestLogLevelAndFormatAccessors(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "text"}
	assert.Equal(t, "warn", cfg.LogLevelValue())
	assert.Equal(t, "text", cfg.LogFormatValue())
}
