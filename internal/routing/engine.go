// Package routing answers "which buses go from stop A to stop B, and when"
// over ambiguous, user-spoken stop names. It expands names through stop
// groups, finds and ranks every bus connecting the two places, and windows
// the raw timetable into the departures relevant right now.
package routing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/avdivo/nearest-bus/internal/clock"
	"github.com/avdivo/nearest-bus/internal/models"
)

// ErrIdenticalStops is returned when the caller asks for a route from a stop
// to itself. It is the only caller-facing error of the engine: everything
// else is either an empty result or a data-access failure passed through.
var ErrIdenticalStops = errors.New("start and finish stops are identical")

// Store is the read surface the engine needs from the timetable database.
// All data is owned and mutated elsewhere; the engine only queries it.
type Store interface {
	StopsByName(ctx context.Context, name string) ([]models.Stop, error)
	StopGroups(ctx context.Context) ([][]string, error)
	BusesTouching(ctx context.Context, stopIDs []int64) ([]models.Bus, error)
	RouteParts(ctx context.Context, busID int64) ([]models.RoutePart, error)
	ScheduleEntries(ctx context.Context, stopID, busID int64, day int) ([]models.TimeOfDay, error)
	HolidayOverride(ctx context.Context, date time.Time) (int, bool, error)
}

// Engine is the route resolution and schedule windowing engine. It is
// stateless: every call is a pure function of its inputs and the current
// store contents, so a single Engine is safe for concurrent use.
type Engine struct {
	store  Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewEngine wires the engine to its data store and clock.
func NewEngine(store Store, clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{store: store, clock: clk, logger: logger}
}
