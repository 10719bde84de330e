package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, k := range []string{"PORT", "DATASET_PATH", "DATASET_DUPLICATES", "DEFAULT_HOUR", "CORS_ORIGINS", "RATE_LIMIT", "RATE_WINDOW"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.Port)
	require.Equal(t, "./data/life_rhythms_clean.csv", cfg.DatasetPath)
	require.Equal(t, "allow", cfg.Duplicates)
	require.Equal(t, 8, cfg.DefaultHour)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Zero(t, cfg.RateLimit)
	require.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", ":9000")
	t.Setenv("DATASET_PATH", "/srv/life.sqlite")
	t.Setenv("DATASET_DUPLICATES", "reject")
	t.Setenv("DEFAULT_HOUR", "12")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://example.org ,")
	t.Setenv("RATE_LIMIT", "120")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, ":9000", cfg.Port)
	require.Equal(t, "/srv/life.sqlite", cfg.DatasetPath)
	require.Equal(t, "reject", cfg.Duplicates)
	require.Equal(t, 12, cfg.DefaultHour)
	require.Equal(t, []string{"http://localhost:5173", "https://example.org"}, cfg.CORSOrigins)
	require.Equal(t, 120, cfg.RateLimit)
	require.Equal(t, 30*time.Second, cfg.RateWindow)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout, "invalid durations fall back to the default")
}
