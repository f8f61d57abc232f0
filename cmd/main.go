package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/config"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/endpoints"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/service"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/transport"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/city"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/duffel"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider"
	amadeusflight "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/amadeus"
	duffelflight "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/duffel"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/fx"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/hotel"
	amadeushotel "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/hotelprovider/amadeus"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/location"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/logger"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/ratelimit"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/trippackage"
	"github.com/redis/go-redis/v9"
)

// @title           Trip Package Aggregation Service API
// @version         0.0.1
// @description     trip-package-aggregation-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.String("flight_provider", cfg.Providers.FlightProvider))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	limiter := initLimiter(cfg, redisClient)

	amadeusClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Providers.Amadeus.BaseURL,
		ClientID:     cfg.Providers.Amadeus.ClientID,
		ClientSecret: cfg.Providers.Amadeus.ClientSecret,
		Timeout:      cfg.Providers.Amadeus.Timeout,
		MaxRetries:   cfg.Providers.MaxRetries,
		Limiter:      limiter,
	})

	duffelClient := duffel.NewClient(duffel.Config{
		BaseURL:    cfg.Providers.Duffel.BaseURL,
		APIKey:     cfg.Providers.Duffel.APIKey,
		Version:    cfg.Providers.Duffel.Version,
		Timeout:    cfg.Providers.Duffel.Timeout,
		MaxRetries: cfg.Providers.MaxRetries,
		Limiter:    limiter,
	})

	flights := selectFlightProvider(ctx, cfg, amadeusClient, duffelClient)

	// amadeus locations when credentials exist, built-in airports otherwise
	var lookup location.Lookup = location.NewStaticIndex()
	if amadeusClient.Configured() {
		lookup = location.NewAmadeusLookup(amadeusClient)
	}

	bandBuilder := hotel.NewBandBuilder(amadeushotel.NewProvider(amadeusClient), city.NewResolver(lookup))

	converter := fx.NewConverter(fx.Config{
		BaseURL:         cfg.FX.BaseURL,
		Timeout:         cfg.FX.Timeout,
		CacheExpiration: cfg.FX.CacheExpiration,
	}, fx.NewRateCache(redisClient, cfg.FX.CacheExpiration))

	var searchConverter service.CurrencyConverter
	if cfg.FX.Enabled {
		searchConverter = converter
	}

	searchService := service.NewSearchService(flights, bandBuilder,
		trippackage.NewAssembler(cfg.ClientBaseURL), searchConverter)

	healthService := service.NewHealthService(dto.HealthResponse{
		FlightProvider:   strings.ToLower(cfg.Providers.FlightProvider),
		Amadeus:          amadeusClient.Configured(),
		DuffelConfigured: cfg.Providers.Duffel.APIKey != "",
		DuffelReady:      duffelClient.Configured(),
		DuffelVersion:    duffelClient.Version(),
		FXEnabled:        cfg.FX.Enabled,
		RateLimitBackend: cfg.Providers.RateLimitBackend,
		ClientBase:       cfg.ClientBaseURL,
	})

	// init service endpoint
	return endpoints.MakeEndpoints(
		searchService,
		service.NewLocationService(lookup),
		service.NewFXService(converter),
		healthService,
	)
}

// initLimiter shares provider limits through redis or keeps them in process.
func initLimiter(cfg *config.Config, redisClient *redis.Client) ratelimit.Limiter {
	rps := cfg.Providers.RateLimitRPS
	if rps <= 0 {
		return ratelimit.Unlimited{}
	}

	if strings.EqualFold(cfg.Providers.RateLimitBackend, ratelimit.BackendLocal) {
		return ratelimit.NewLocalLimiter(float64(rps), rps)
	}

	return ratelimit.NewRedisLimiter(redis_rate.NewLimiter(redisClient), rps)
}

// register flight providers and pick the configured one
func selectFlightProvider(
	ctx context.Context,
	cfg *config.Config,
	amadeusClient *amadeus.Client,
	duffelClient *duffel.Client,
) flightprovider.FlightProvider {
	factory := flightprovider.NewFlightProviderFactory()
	factory.AddProvider(flightprovider.Amadeus, amadeusflight.NewProvider(amadeusClient))
	factory.AddProvider(flightprovider.Duffel, duffelflight.NewProvider(duffelClient))

	provider, err := factory.Select(cfg.Providers.FlightProvider)
	if err != nil {
		slog.ErrorContext(ctx, "failed to select flight provider", slog.String("error", err.Error()))
		panic(err)
	}

	slog.InfoContext(ctx, "flight provider selected", slog.String("provider", cfg.Providers.FlightProvider))

	return provider
}
