package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	DBPath   string
	DBDriver string
	Locale   string
	LogLevel string

	// CorsOrigins is a comma separated list handed to the CORS middleware
	CorsOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		DBPath:          GetEnv("DB_PATH", "./data/notes_old.db"),
		DBDriver:        GetEnv("DB_DRIVER", "sqlite3"),
		Locale:          GetEnv("LOCALE", GetEnv("LANG", "en")),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		CorsOrigins:     GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:    GetEnvInt("RATE_LIMIT_MAX", 200),
		RateLimitWindow: GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when the variable is unset or not a
// positive integer
func GetEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// GetEnvDuration parses values such as "30s" or "1m"
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
