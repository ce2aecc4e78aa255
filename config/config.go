package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	MongoURI  string
	DBName    string
	RedisAddr string
	RedisPass string
	CacheTTL  time.Duration
	LogLevel  string
	SeedData  bool
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		MongoURI:  os.Getenv("MONGOURI"),
		DBName:    getEnv("DB", "property_dashboard"),
		RedisAddr: os.Getenv("REDIS_ADD"),
		RedisPass: os.Getenv("REDIS_PASS"),
		CacheTTL:  10 * time.Minute,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &InvalidValueError{Key: "CACHE_TTL", Value: raw, Err: err}
		}
		cfg.CacheTTL = ttl
	}

	if raw := os.Getenv("SEED_DATA"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &InvalidValueError{Key: "SEED_DATA", Value: raw, Err: err}
		}
		cfg.SeedData = seed
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}

	return cfg, nil
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
