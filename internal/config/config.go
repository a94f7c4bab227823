package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	GazetteerPath   string
	HydrographyPath string
	OverridePath    string
	CacheTable      string
	MinTokenScore   int

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	AWSRegion    string
	CacheLRUSize int
}

// LogLevelValue and LogFormatValue satisfy observability.LogConfig.
func (c *Config) LogLevelValue() string  { return c.LogLevel }
func (c *Config) LogFormatValue() string { return c.LogFormat }

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownStr := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	minTokenScore := 3
	if s := os.Getenv("MIN_TOKEN_SCORE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("invalid MIN_TOKEN_SCORE")
		}
		minTokenScore = n
	}

	cacheLRUSize := 1000
	if s := os.Getenv("CACHE_LRU_SIZE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, errors.New("invalid CACHE_LRU_SIZE")
		}
		cacheLRUSize = n
	}

	cfg := &Config{
		GazetteerPath:   os.Getenv("GAZETTEER_PATH"),
		HydrographyPath: os.Getenv("HYDROGRAPHY_PATH"),
		OverridePath:    envOrDefault("OVERRIDE_PATH", "manual_override.json"),
		CacheTable:      os.Getenv("CACHE_TABLE"),
		MinTokenScore:   minTokenScore,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		AWSRegion:    envOrDefault("AWS_REGION", "us-west-2"),
		CacheLRUSize: cacheLRUSize,
	}

	if cfg.GazetteerPath == "" {
		return nil, errors.New("GAZETTEER_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
