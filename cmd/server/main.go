// Package main is the entry point for the flight search service.
//
//	@title						Flight Search API
//	@version					1.0.0
//	@description				A flight search service that serves normalized flight results from a live aviation data feed or a built-in fixture dataset.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyfare/flight-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skyfare/flight-search-service/docs"

	flighthttp "github.com/skyfare/flight-search-service/internal/adapter/http"
	"github.com/skyfare/flight-search-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-search-service/internal/adapter/provider/aviationstack"
	"github.com/skyfare/flight-search-service/internal/adapter/provider/fixture"
	"github.com/skyfare/flight-search-service/internal/config"
	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-search-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: cfg.App.Name,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("live_provider", cfg.LiveProviderEnabled()).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	service := buildFlightService(cfg, log)
	handler := flighthttp.NewFlightHandler(service, log)
	flighthttp.RegisterRoutes(e, handler)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildFlightService selects the search backend. An aviationstack API key in
// the environment enables the live feed; without one the service answers from
// the fixture dataset.
func buildFlightService(cfg *config.Config, log *logger.Logger) domain.FlightService {
	if cfg.LiveProviderEnabled() {
		client := aviationstack.NewClient(nil, cfg.Provider.BaseURL, cfg.Provider.APIKey)
		return aviationstack.NewService(client, cfg.Provider.ReferenceHub, log)
	}
	return usecase.NewFixtureSearchService(fixture.Flights(), log)
}

// gracefulShutdown drains in-flight requests on SIGINT or SIGTERM.
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
