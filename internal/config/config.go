package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv string
	Port   string

	// Record store file backing the in-memory flights table
	FlightsFile string

	// Read cache
	CacheTTLSeconds     int
	CacheCleanupSeconds int

	// Per-IP rate limit for the public API
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment, with a .env file as an
// optional source.
func Load() *Config {
	godotenv.Load()

	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		FlightsFile:         getEnv("FLIGHTS_FILE", "flights_sample.json"),
		CacheTTLSeconds:     getEnvAsInt("CACHE_TTL_SECONDS", 60),
		CacheCleanupSeconds: getEnvAsInt("CACHE_CLEANUP_SECONDS", 600),
		RateLimitPerSecond:  getEnvAsInt("RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:      getEnvAsInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
