package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/avdivo/nearest-bus/internal/models"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	stops    []models.Stop
	groups   [][]string
	buses    []models.Bus
	parts    map[int64][]models.RoutePart
	schedule map[string][]models.TimeOfDay
	holidays map[string]int
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		parts:    make(map[int64][]models.RoutePart),
		schedule: make(map[string][]models.TimeOfDay),
		holidays: make(map[string]int),
	}
}

func (f *fakeStore) addStop(id int64, name string) models.Stop {
	stop := models.Stop{ID: id, Name: name, ExternalID: fmt.Sprintf("ext-%d", id)}
	f.stops = append(f.stops, stop)
	return stop
}

func (f *fakeStore) addBus(id int64, label string, parts ...models.RoutePart) models.Bus {
	bus := models.Bus{ID: id, Label: label, Active: true}
	f.buses = append(f.buses, bus)
	f.parts[id] = parts
	return bus
}

func (f *fakeStore) addSchedule(stop models.Stop, bus models.Bus, day int, times ...models.TimeOfDay) {
	key := scheduleKey(stop.ID, bus.ID, day)
	f.schedule[key] = append(f.schedule[key], times...)
}

func scheduleKey(stopID, busID int64, day int) string {
	return fmt.Sprintf("%d/%d/%d", stopID, busID, day)
}

func (f *fakeStore) StopsByName(_ context.Context, name string) ([]models.Stop, error) {
	if f.err != nil {
		return nil, f.err
	}
	var named []models.Stop
	for _, s := range f.stops {
		if s.Name == name {
			named = append(named, s)
		}
	}
	return named, nil
}

func (f *fakeStore) StopGroups(context.Context) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
}

func (f *fakeStore) BusesTouching(_ context.Context, stopIDs []int64) ([]models.Bus, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]bool, len(stopIDs))
	for _, id := range stopIDs {
		wanted[id] = true
	}
	var touching []models.Bus
	for _, bus := range f.buses {
		for _, part := range f.parts[bus.ID] {
			found := false
			for _, s := range part {
				if wanted[s.ID] {
					touching = append(touching, bus)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return touching, nil
}

func (f *fakeStore) RouteParts(_ context.Context, busID int64) ([]models.RoutePart, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parts[busID], nil
}

func (f *fakeStore) ScheduleEntries(_ context.Context, stopID, busID int64, day int) ([]models.TimeOfDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule[scheduleKey(stopID, busID, day)], nil
}

func (f *fakeStore) HolidayOverride(_ context.Context, date time.Time) (int, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	day, ok := f.holidays[date.Format("2006-01-02")]
	return day, ok, nil
}
