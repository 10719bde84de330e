package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port            string
	GinMode         string
	DatasetPath     string
	DatasetTable    string // SQLite sources only
	Duplicates      string // allow, reject, average
	DefaultHour     int
	CORSOrigins     []string
	RateLimit       int // Requests per RateWindow per client IP, 0 disables
	RateWindow      time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load 加载配置. A .env file in the working directory is honoured outside production.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return &Config{
		Port:            getEnv("PORT", ":8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		DatasetPath:     getEnv("DATASET_PATH", "./data/life_rhythms_clean.csv"),
		DatasetTable:    getEnv("DATASET_TABLE", "observations"),
		Duplicates:      getEnv("DATASET_DUPLICATES", "allow"),
		DefaultHour:     getIntEnv("DEFAULT_HOUR", 8),
		CORSOrigins:     splitAndTrim(getEnv("CORS_ORIGINS", "*")),
		RateLimit:       getIntEnv("RATE_LIMIT", 0),
		RateWindow:      getDurationEnv("RATE_WINDOW", time.Minute),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
