package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel      LogLeveler `mapstructure:"LOG_LEVEL"`
	ClientBaseURL string     `mapstructure:"CLIENT_BASE_URL"`
	HTTP          HTTP       `mapstructure:",squash"`
	Redis         Redis      `mapstructure:",squash"`
	Providers     Provider   `mapstructure:",squash"`
	FX            FX         `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type AmadeusProvider struct {
	BaseURL      string        `mapstructure:"AMADEUS_BASE_URL"`
	ClientID     string        `mapstructure:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `mapstructure:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
}

type DuffelProvider struct {
	BaseURL string        `mapstructure:"DUFFEL_BASE_URL"`
	APIKey  string        `mapstructure:"DUFFEL_API_KEY"`
	Version string        `mapstructure:"DUFFEL_VERSION"`
	Timeout time.Duration `mapstructure:"DUFFEL_TIMEOUT"`
}

// Provider holds the upstream configuration. FlightProvider picks the flight backend once at start.
type Provider struct {
	FlightProvider   string          `mapstructure:"FLIGHT_PROVIDER"`
	MaxRetries       int             `mapstructure:"PROVIDER_MAX_RETRIES"`
	RateLimitRPS     int             `mapstructure:"PROVIDER_RATE_LIMIT"`
	RateLimitBackend string          `mapstructure:"RATE_LIMIT_BACKEND"`
	Amadeus          AmadeusProvider `mapstructure:",squash"`
	Duffel           DuffelProvider  `mapstructure:",squash"`
}

type FX struct {
	Enabled         bool          `mapstructure:"FX_ENABLED"`
	BaseURL         string        `mapstructure:"FX_BASE_URL"`
	Timeout         time.Duration `mapstructure:"FX_TIMEOUT"`
	CacheExpiration time.Duration `mapstructure:"FX_CACHE_EXPIRATION"`
}
