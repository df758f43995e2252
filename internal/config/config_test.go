package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutDatabase(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_ORIGINS", "")
	t.Setenv("TZ", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.DatabaseConfigured())
	require.Equal(t, ":8000", cfg.ServerAddr)
	require.Equal(t, []string{"*"}, cfg.FrontendOrigins)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadReadsEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "courses")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_CONTACT", "not-a-number")
	t.Setenv("TZ", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.DatabaseConfigured())
	require.Equal(t, ":9090", cfg.ServerAddr)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.FrontendOrigins)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, 5, cfg.RateLimitContact)
}

func TestAdminConfigured(t *testing.T) {
	cfg := &Config{JWTSecret: "s"}
	require.False(t, cfg.AdminConfigured())
	cfg.AdminPasswordHash = "$2a$10$abc"
	require.True(t, cfg.AdminConfigured())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
