package config

import (
	"os"
	"strconv"
	"time"
)

// Config lovinamom-data (HTTP API) configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Sheet        SheetConfig
	CacheEnabled bool
	Redis        struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Poll struct {
		Interval time.Duration // 0 disables background refresh
	}
	AdminPIN string
}

// SheetConfig Google Apps Script sheet endpoint configuration
type SheetConfig struct {
	APIURL     string        `yaml:"api_url"`     // deployment /exec URL
	Timeout    time.Duration `yaml:"timeout"`     // per-request deadline
	RetryDelay time.Duration `yaml:"retry_delay"` // fixed wait before the single retry
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Sheet.APIURL = getEnv("SHEET_API_URL", "")
	cfg.Sheet.Timeout = time.Duration(parseInt(getEnv("SHEET_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.Sheet.RetryDelay = time.Duration(parseInt(getEnv("SHEET_RETRY_DELAY_MS", "1500"), 1500)) * time.Millisecond

	// Default to false for local dev: without redis the service falls back
	// to the in-memory snapshot cache instead of failing to start.
	cfg.CacheEnabled = getEnv("CACHE_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Poll.Interval = time.Duration(parseInt(getEnv("POLL_INTERVAL_SECONDS", "60"), 60)) * time.Second

	cfg.AdminPIN = getEnv("ADMIN_PIN", "1234")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
