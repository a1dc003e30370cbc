package routing

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/avdivo/nearest-bus/internal/models"
	"github.com/avdivo/nearest-bus/internal/utils"
)

// windowMinutes is the span of the departure window: a full service day
// anchored at the current minute.
const windowMinutes = models.MinutesPerDay

// NextDepartures resolves the best routes between the two named places and
// turns their raw timetables into a time-ordered window of departures
// starting now, wrapping past midnight. An empty timetable means no
// qualifying service.
func (e *Engine) NextDepartures(ctx context.Context, startName, finishName string) (models.Timetable, error) {
	report, err := e.Best(ctx, startName, finishName)
	if err != nil || report.Empty() {
		return nil, err
	}

	e.logger.Debug("route report resolved",
		"priority", int(report.Priority), "departure_stops", len(report.Groups))

	now := e.clock.Now()
	day, err := e.serviceDay(ctx, now)
	if err != nil {
		return nil, err
	}

	buckets := make(map[models.TimeOfDay][]models.DepartureEvent)
	for _, group := range report.Groups {
		for _, leg := range group.Legs {
			times, err := e.store.ScheduleEntries(ctx, group.From.ID, leg.Bus.ID, day)
			if err != nil {
				return nil, fmt.Errorf("loading timetable of bus %s at %s: %w",
					leg.Bus.Label, group.From.Name, err)
			}
			if len(times) == 0 {
				continue
			}

			event := models.DepartureEvent{
				Bus:       leg.Bus,
				From:      group.From,
				To:        leg.To,
				FirstStop: leg.FirstStop,
				LastStop:  leg.LastStop,
				Modifiers: modifiers(report, group, leg, startName, finishName),
			}
			for _, t := range times {
				buckets[t] = append(buckets[t], event)
			}
		}
	}
	if len(buckets) == 0 {
		return nil, nil
	}

	marks := make([]models.TimeOfDay, 0, len(buckets))
	for t := range buckets {
		marks = append(marks, t)
	}
	slices.Sort(marks)

	var timetable models.Timetable
	for t := range Window(marks, models.TimeOfDayFrom(now), windowMinutes) {
		timetable = append(timetable, models.TimeSlot{Time: t, Events: buckets[t]})
	}
	return timetable, nil
}

// serviceDay resolves which weekday's timetable applies to the given date:
// the holiday override when one exists, the ISO weekday otherwise.
func (e *Engine) serviceDay(ctx context.Context, now time.Time) (int, error) {
	day, overridden, err := e.store.HolidayOverride(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("loading holiday override: %w", err)
	}
	if overridden {
		return day, nil
	}
	return isoWeekday(now), nil
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// modifiers computes the disambiguation tags for one (departure stop, bus)
// pair of a report.
func modifiers(report models.RouteReport, group models.DepartureGroup, leg models.BusLeg, startName, finishName string) []models.Modifier {
	var mods []models.Modifier
	if !utils.SameName(group.From.Name, startName) {
		mods = append(mods, models.ModifierStartDiff)
	}
	if !utils.SameName(leg.To.Name, finishName) {
		mods = append(mods, models.ModifierFinishDiff)
	}

	switch report.Priority {
	case models.PriorityCrossPart:
		mods = append(mods, models.ModifierTerminusOne)
	case models.PriorityLoop:
		mods = append(mods, models.ModifierTerminusTwo)
	}

	// Two physically distinct, same-named stops both served by this bus:
	// only the terminus can tell the rider which side to stand on.
	for _, other := range report.Groups {
		if other.From.ID != group.From.ID && other.From.Name == group.From.Name && other.HasBus(leg.Bus.ID) {
			mods = append(mods, models.ModifierBoth)
			break
		}
	}
	return mods
}
