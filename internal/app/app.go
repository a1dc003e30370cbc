// Package app aggregates the application's long-lived dependencies.
package app

import (
	"log/slog"

	"github.com/avdivo/nearest-bus/internal/appconf"
	"github.com/avdivo/nearest-bus/internal/clock"
	"github.com/avdivo/nearest-bus/internal/routing"
	"github.com/avdivo/nearest-bus/internal/scheddb"
)

// Application holds the configured dependencies shared by the API handlers.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Store  *scheddb.Client
	Clock  clock.Clock
	Engine *routing.Engine
}
