package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything tunable in the service. The core durations
// (cleanup period, chat grace, layover bounds) are constants in spirit but
// exposed through the environment so deployments can adjust them.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	// CleanupPeriod is how often the eviction sweep runs.
	CleanupPeriod time.Duration
	// ChatGrace is how long a private chat outlives the earlier of its two
	// layover ends.
	ChatGrace time.Duration
	// MinLayover and MaxLayover bound accepted layover durations.
	MinLayover time.Duration
	MaxLayover time.Duration
}

// Load reads .env (if present) and builds the config from the environment,
// falling back to defaults.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			CleanupPeriod: getEnvAsDuration("STORE_CLEANUP_PERIOD", time.Minute),
			ChatGrace:     getEnvAsDuration("STORE_CHAT_GRACE", time.Hour),
			MinLayover:    getEnvAsDuration("STORE_MIN_LAYOVER", 30*time.Minute),
			MaxLayover:    getEnvAsDuration("STORE_MAX_LAYOVER", 24*time.Hour),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Store.CleanupPeriod <= 0 {
		return fmt.Errorf("cleanup period must be positive")
	}
	if c.Store.ChatGrace < 0 {
		return fmt.Errorf("chat grace must not be negative")
	}
	if c.Store.MinLayover <= 0 || c.Store.MaxLayover <= c.Store.MinLayover {
		return fmt.Errorf("layover bounds must satisfy 0 < min < max")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
