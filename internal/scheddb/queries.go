package scheddb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/avdivo/nearest-bus/internal/models"
	"github.com/avdivo/nearest-bus/internal/utils"
)

// DBTX is the execution surface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries bundles every statement the engine and the import tooling need.
type Queries struct {
	db DBTX
}

// New creates a Queries layer over a database or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries layer bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// StopsByName returns every stop carrying the given display name, in stable
// id order. Several physical stops may share one name.
func (q *Queries) StopsByName(ctx context.Context, name string) ([]models.Stop, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, external_id, is_terminus FROM stops WHERE name = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("querying stops named %q: %w", name, err)
	}
	defer rows.Close()

	var stops []models.Stop
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.ExternalID, &s.IsTerminus); err != nil {
			return nil, fmt.Errorf("scanning stop row: %w", err)
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

// StopGroups returns every stop group as its list of member names. Rows whose
// names column does not decode to a JSON string list are skipped: partial
// group data must not block unrelated groups.
func (q *Queries) StopGroups(ctx context.Context) ([][]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT names FROM stop_groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying stop groups: %w", err)
	}
	defer rows.Close()

	var groups [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning stop group row: %w", err)
		}
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			continue
		}
		groups = append(groups, names)
	}
	return groups, rows.Err()
}

// BusesTouching returns every active bus whose route serves at least one of
// the given stops, in natural label order.
func (q *Queries) BusesTouching(ctx context.Context, stopIDs []int64) ([]models.Bus, error) {
	if len(stopIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(stopIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`SELECT DISTINCT b.id, b.label, b.active
		FROM buses b
		JOIN routes r ON r.bus_id = b.id
		JOIN route_stops rs ON rs.route_id = r.id
		WHERE b.active = 1 AND rs.stop_id IN (%s)`, placeholders)

	args := make([]any, len(stopIDs))
	for i, id := range stopIDs {
		args[i] = id
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying buses for stops: %w", err)
	}
	defer rows.Close()

	var buses []models.Bus
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.Label, &b.Active); err != nil {
			return nil, fmt.Errorf("scanning bus row: %w", err)
		}
		buses = append(buses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(buses, func(a, b models.Bus) int {
		return utils.CompareBusLabels(a.Label, b.Label)
	})
	return buses, nil
}

// RouteParts returns the ordered stop sequences of every route of a bus, one
// slice per part, in route id order.
func (q *Queries) RouteParts(ctx context.Context, busID int64) ([]models.RoutePart, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT r.id, s.id, s.name, s.external_id, s.is_terminus
		FROM routes r
		JOIN route_stops rs ON rs.route_id = r.id
		JOIN stops s ON s.id = rs.stop_id
		WHERE r.bus_id = ?
		ORDER BY r.id, rs.position`, busID)
	if err != nil {
		return nil, fmt.Errorf("querying route parts for bus %d: %w", busID, err)
	}
	defer rows.Close()

	var parts []models.RoutePart
	var currentRoute int64 = -1
	for rows.Next() {
		var routeID int64
		var s models.Stop
		if err := rows.Scan(&routeID, &s.ID, &s.Name, &s.ExternalID, &s.IsTerminus); err != nil {
			return nil, fmt.Errorf("scanning route stop row: %w", err)
		}
		if routeID != currentRoute {
			parts = append(parts, models.RoutePart{})
			currentRoute = routeID
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], s)
	}
	return parts, rows.Err()
}

// ScheduleEntries returns the departure times of one bus at one stop on the
// given day-of-week, ascending.
func (q *Queries) ScheduleEntries(ctx context.Context, stopID, busID int64, day int) ([]models.TimeOfDay, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT time FROM schedule WHERE stop_id = ? AND bus_id = ? AND day = ? ORDER BY time`,
		stopID, busID, day)
	if err != nil {
		return nil, fmt.Errorf("querying schedule for stop %d bus %d day %d: %w", stopID, busID, day, err)
	}
	defer rows.Close()

	var times []models.TimeOfDay
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		t, err := models.ParseTimeOfDay(raw)
		if err != nil {
			return nil, fmt.Errorf("schedule entry for stop %d bus %d: %w", stopID, busID, err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// HolidayOverride reports whether the given date follows another weekday's
// timetable, and which one.
func (q *Queries) HolidayOverride(ctx context.Context, date time.Time) (int, bool, error) {
	var day int
	err := q.db.QueryRowContext(ctx,
		`SELECT day FROM holidays WHERE date = ?`, date.Format("2006-01-02")).Scan(&day)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying holiday override for %s: %w", date.Format("2006-01-02"), err)
	}
	return day, true, nil
}
