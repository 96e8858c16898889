package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	RedisURL              string // empty selects the process-local backend
	CacheTTL              time.Duration
	PokeAPIBaseURL        string
	FetchTimeout          time.Duration
	FetchMaxAttempts      int
	FetchBackoffMin       time.Duration
	FetchBackoffMax       time.Duration
	GlobalRateLimitPerSec int
	PerIPRateLimitPerSec  int
	DatabaseURL           string // empty selects the stdout log sink
	ServerReadTimeout     time.Duration
	ServerWriteTimeout    time.Duration
	ServerShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists (optional)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		RedisURL:              getEnv("REDIS_URL", ""),
		CacheTTL:              getDurationEnv("CACHE_TTL", 3600*time.Second),
		PokeAPIBaseURL:        getEnv("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2"),
		FetchTimeout:          getDurationEnv("FETCH_TIMEOUT_SECONDS", 10*time.Second),
		FetchMaxAttempts:      getIntEnv("FETCH_MAX_ATTEMPTS", 3),
		FetchBackoffMin:       getDurationEnv("FETCH_BACKOFF_MIN_SECONDS", 1*time.Second),
		FetchBackoffMax:       getDurationEnv("FETCH_BACKOFF_MAX_SECONDS", 4*time.Second),
		GlobalRateLimitPerSec: getIntEnv("GLOBAL_RATE_LIMIT_PER_SEC", 100),
		PerIPRateLimitPerSec:  getIntEnv("PER_IP_RATE_LIMIT_PER_SEC", 10),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		ServerReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
		// Worst case per request: 3 fetch attempts of 10s plus backoff
		ServerWriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 45*time.Second),
		ServerShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal) * time.Second
		}
	}
	return defaultValue
}
