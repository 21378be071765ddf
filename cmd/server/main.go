// Package main is the entry point for the FlyOn flight search API.
//
//	@title			FlyOn Flight Search API
//	@version		1.0.0
//	@description	Flight, airport, and price search backed by the Amadeus Self-Service APIs.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes	http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Swagger spec registration
	_ "github.com/flyon/flyon-api/docs"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	flighthttp "github.com/flyon/flyon-api/internal/adapter/http"
	"github.com/flyon/flyon-api/internal/adapter/http/middleware"
	"github.com/flyon/flyon-api/internal/config"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/cache"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
	"github.com/flyon/flyon-api/internal/infrastructure/timeutil"
	"github.com/flyon/flyon-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flyon-api",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	flighthttp.RegisterRoutes(e, buildHandler(cfg, log))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildHandler wires the upstream client, caches, and use cases.
func buildHandler(cfg *config.Config, log *logger.Logger) *flighthttp.Handler {
	clock := timeutil.NewRealClock()

	client := amadeus.NewClient(amadeus.Config{
		BaseURL:   cfg.Amadeus.BaseURL,
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		Timeout:   cfg.Amadeus.Timeout,
	},
		amadeus.WithClock(clock),
		amadeus.WithLogger(log.WithContext("component", "amadeus")),
	)

	// Empty results are never cached so transient upstream failures are
	// retried on the next request instead of pinned for the full TTL.
	airportCache := cache.New(clock, cache.WithSkipStore(cache.SkipEmptySlice[domain.Airport]))
	flightCache := cache.New(clock, cache.WithSkipStore(usecase.SkipEmptyOffers))
	calendarCache := cache.New(clock, cache.WithSkipStore(cache.SkipEmptySlice[domain.CalendarEntry]))

	return flighthttp.NewHandler(
		usecase.NewAirportSearchUseCase(client, airportCache, cfg.Cache.AirportTTL, log),
		usecase.NewFlightSearchUseCase(client, flightCache, cfg.Cache.FlightTTL, log),
		usecase.NewPriceCalendarUseCase(client, calendarCache, cfg.Cache.CalendarTTL, clock, log),
		usecase.NewPriceAnalysisUseCase(client, log),
	)
}

// gracefulShutdown blocks until an interrupt, then drains in-flight requests.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
