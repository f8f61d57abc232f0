//go:build unit

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustInitConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("FLIGHT_PROVIDER", "duffel")
	t.Setenv("DUFFEL_API_KEY", "duffel_test")
	t.Setenv("AMADEUS_CLIENT_ID", "id")
	t.Setenv("FX_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://trips.example.com")

	cfg := MustInitConfig("testdata/does-not-exist.env")

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "duffel", cfg.Providers.FlightProvider)
	assert.Equal(t, "duffel_test", cfg.Providers.Duffel.APIKey)
	assert.Equal(t, "v2", cfg.Providers.Duffel.Version)
	assert.Equal(t, "id", cfg.Providers.Amadeus.ClientID)
	assert.True(t, cfg.FX.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.FX.CacheExpiration)
	assert.Equal(t, "redis", cfg.Providers.RateLimitBackend)
	assert.Equal(t, []string{"http://localhost:5173", "https://trips.example.com"}, cfg.HTTP.CORSAllowedOrigins)
}

func TestLogLeveler_Level(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogLeveler("warn").Level())
	assert.Equal(t, slog.LevelInfo, LogLeveler("nonsense").Level())
}
