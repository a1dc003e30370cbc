package scheddb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avdivo/nearest-bus/internal/models"
)

// Write helpers used by the import pipeline and by tests. The engine itself
// never calls these.

// CreateStopParams describes a stop to insert.
type CreateStopParams struct {
	Name       string
	ExternalID string
	IsTerminus bool
}

// CreateStop inserts a stop and returns it with its assigned id.
func (q *Queries) CreateStop(ctx context.Context, params CreateStopParams) (models.Stop, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO stops (name, external_id, is_terminus) VALUES (?, ?, ?)`,
		params.Name, params.ExternalID, params.IsTerminus)
	if err != nil {
		return models.Stop{}, fmt.Errorf("inserting stop %q: %w", params.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Stop{}, err
	}
	return models.Stop{
		ID:         id,
		Name:       params.Name,
		ExternalID: params.ExternalID,
		IsTerminus: params.IsTerminus,
	}, nil
}

// CreateBus inserts a bus and returns it with its assigned id.
func (q *Queries) CreateBus(ctx context.Context, label string, active bool) (models.Bus, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO buses (label, active) VALUES (?, ?)`, label, active)
	if err != nil {
		return models.Bus{}, fmt.Errorf("inserting bus %q: %w", label, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Bus{}, err
	}
	return models.Bus{ID: id, Label: label, Active: active}, nil
}

// CreateRoute inserts a route part for a bus and returns its id. Stops are
// attached with AddRouteStop in travel order.
func (q *Queries) CreateRoute(ctx context.Context, busID int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `INSERT INTO routes (bus_id) VALUES (?)`, busID)
	if err != nil {
		return 0, fmt.Errorf("inserting route for bus %d: %w", busID, err)
	}
	return res.LastInsertId()
}

// AddRouteStop appends a stop to a route at a 1-based position.
func (q *Queries) AddRouteStop(ctx context.Context, routeID int64, position int, stopID int64) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO route_stops (route_id, position, stop_id) VALUES (?, ?, ?)`,
		routeID, position, stopID)
	if err != nil {
		return fmt.Errorf("inserting route stop %d at %d: %w", stopID, position, err)
	}
	return nil
}

// AddScheduleEntry records one departure time for a (day, stop, bus) triple.
func (q *Queries) AddScheduleEntry(ctx context.Context, day int, stopID, busID int64, t models.TimeOfDay) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO schedule (day, stop_id, bus_id, time) VALUES (?, ?, ?, ?)`,
		day, stopID, busID, t.String())
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

// AddStopGroup stores a set of interchangeable stop names.
func (q *Queries) AddStopGroup(ctx context.Context, names []string) error {
	encoded, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encoding stop group: %w", err)
	}
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO stop_groups (names) VALUES (?)`, string(encoded)); err != nil {
		return fmt.Errorf("inserting stop group: %w", err)
	}
	return nil
}

// AddRawStopGroup stores the names column verbatim. Exists for tests covering
// malformed group data.
func (q *Queries) AddRawStopGroup(ctx context.Context, raw string) error {
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO stop_groups (names) VALUES (?)`, raw); err != nil {
		return fmt.Errorf("inserting raw stop group: %w", err)
	}
	return nil
}

// AddHoliday maps a concrete date to the weekday whose timetable applies.
func (q *Queries) AddHoliday(ctx context.Context, date time.Time, name string, day int) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO holidays (date, name, day) VALUES (?, ?, ?)`,
		date.Format("2006-01-02"), name, day)
	if err != nil {
		return fmt.Errorf("inserting holiday %q: %w", name, err)
	}
	return nil
}
