package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdivo/nearest-bus/internal/app"
	"github.com/avdivo/nearest-bus/internal/appconf"
	"github.com/avdivo/nearest-bus/internal/clock"
	"github.com/avdivo/nearest-bus/internal/logging"
	"github.com/avdivo/nearest-bus/internal/restapi"
	"github.com/avdivo/nearest-bus/internal/routing"
	"github.com/avdivo/nearest-bus/internal/scheddb"
)

// BuildApplication creates and initializes the Application with all
// dependencies: logger, schedule store, clock, and the routing engine.
func BuildApplication(cfg appconf.Config) (*app.Application, error) {
	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	store, err := scheddb.NewClient(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing schedule store: %w", err)
	}

	appClock, err := createClock(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &app.Application{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Clock:  appClock,
		Engine: routing.NewEngine(store.Queries, appClock, logger),
	}, nil
}

// createClock selects the Clock implementation: a zoned clock when the
// config pins the city's timezone, the system clock otherwise. Tests inject
// a MockClock directly.
func createClock(cfg appconf.Config) (clock.Clock, error) {
	if cfg.Timezone == "" {
		return clock.RealClock{}, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	return clock.ZonedClock{Location: loc}, nil
}

// CreateServer configures the HTTP server with routes and middleware.
func CreateServer(coreApp *app.Application) *http.Server {
	api := restapi.NewRestAPI(coreApp)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	secureHandler := api.WithSecurityHeaders(mux)

	// Request logging is the outermost layer.
	requestLogMiddleware := restapi.NewRequestLoggingMiddleware(coreApp.Logger)
	handler := requestLogMiddleware(secureHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", coreApp.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}
}

// Run manages the server lifecycle with graceful shutdown on SIGINT/SIGTERM
// or context cancellation.
func Run(ctx context.Context, srv *http.Server, coreApp *app.Application) error {
	coreApp.Logger.Info("starting server", "addr", srv.Addr, "env", coreApp.Config.Env.String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		coreApp.Logger.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		coreApp.Logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := coreApp.Store.Close(); err != nil {
		logging.LogError(coreApp.Logger, "closing schedule store", err)
	}

	coreApp.Logger.Info("server exited")
	return nil
}
