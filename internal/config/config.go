package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, populated from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	JWTExpiry time.Duration
	LogLevel  string
	LogFile   string

	// StrictFuelRefs makes the fuel listing flag entries with dangling
	// driver references instead of substituting the first driver.
	StrictFuelRefs bool
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "rideshare"),
		JWTSecret: getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry: getDuration("JWT_EXPIRY", 24*time.Hour),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", ""),

		StrictFuelRefs: getEnv("STRICT_FUEL_REFS", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
