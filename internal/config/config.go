package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Port          string
	AppEnv        string
	AllowedOrigin string

	Log struct {
		Level logrus.Level
	}

	// Redis backs the rate limiter only. With no address configured the
	// limiter is skipped and the service runs standalone.
	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	RateLimit struct {
		Max    int
		Window time.Duration
	}
}

// Load reads .env.local, then .env, then the process environment, with
// later sources losing to earlier ones already set.
func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.AllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	cfg.Log.Level = level

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.RateLimit.Max = getEnvInt("RATE_LIMIT_MAX", 100)
	cfg.RateLimit.Window = time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second

	return cfg, nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
