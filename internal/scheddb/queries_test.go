package scheddb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdivo/nearest-bus/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStopsByNameReturnsAllSameNamedStops(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	east, err := client.Queries.CreateStop(ctx, CreateStopParams{Name: "Market", ExternalID: "m-east"})
	require.NoError(t, err)
	west, err := client.Queries.CreateStop(ctx, CreateStopParams{Name: "Market", ExternalID: "m-west"})
	require.NoError(t, err)
	_, err = client.Queries.CreateStop(ctx, CreateStopParams{Name: "School", ExternalID: "sch", IsTerminus: true})
	require.NoError(t, err)

	stops, err := client.Queries.StopsByName(ctx, "Market")
	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, east.ID, stops[0].ID)
	assert.Equal(t, west.ID, stops[1].ID)

	missing, err := client.Queries.StopsByName(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStopGroupsSkipMalformedRows(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Queries.AddStopGroup(ctx, []string{"Market", "Plaza"}))
	require.NoError(t, client.Queries.AddRawStopGroup(ctx, "not json at all"))
	require.NoError(t, client.Queries.AddRawStopGroup(ctx, `{"a": 1}`))
	require.NoError(t, client.Queries.AddStopGroup(ctx, []string{"School", "College"}))

	groups, err := client.Queries.StopGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Market", "Plaza"}, groups[0])
	assert.Equal(t, []string{"School", "College"}, groups[1])
}

func TestBusesTouchingFiltersAndOrders(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	q := client.Queries

	market, err := q.CreateStop(ctx, CreateStopParams{Name: "Market", ExternalID: "m"})
	require.NoError(t, err)
	school, err := q.CreateStop(ctx, CreateStopParams{Name: "School", ExternalID: "s"})
	require.NoError(t, err)

	addBusThrough := func(label string, active bool) models.Bus {
		bus, err := q.CreateBus(ctx, label, active)
		require.NoError(t, err)
		routeID, err := q.CreateRoute(ctx, bus.ID)
		require.NoError(t, err)
		require.NoError(t, q.AddRouteStop(ctx, routeID, 1, market.ID))
		require.NoError(t, q.AddRouteStop(ctx, routeID, 2, school.ID))
		return bus
	}

	addBusThrough("10", true)
	addBusThrough("2", true)
	addBusThrough("7а", true)
	addBusThrough("7", true)
	addBusThrough("3", false) // retired bus must not surface

	buses, err := q.BusesTouching(ctx, []int64{market.ID})
	require.NoError(t, err)

	labels := make([]string, len(buses))
	for i, b := range buses {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"2", "7", "7а", "10"}, labels)

	none, err := q.BusesTouching(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRoutePartsKeepTravelOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	q := client.Queries

	stopA, err := q.CreateStop(ctx, CreateStopParams{Name: "A", ExternalID: "a"})
	require.NoError(t, err)
	stopB, err := q.CreateStop(ctx, CreateStopParams{Name: "B", ExternalID: "b"})
	require.NoError(t, err)
	stopC, err := q.CreateStop(ctx, CreateStopParams{Name: "C", ExternalID: "c"})
	require.NoError(t, err)

	bus, err := q.CreateBus(ctx, "5", true)
	require.NoError(t, err)

	outbound, err := q.CreateRoute(ctx, bus.ID)
	require.NoError(t, err)
	require.NoError(t, q.AddRouteStop(ctx, outbound, 1, stopA.ID))
	require.NoError(t, q.AddRouteStop(ctx, outbound, 2, stopB.ID))
	require.NoError(t, q.AddRouteStop(ctx, outbound, 3, stopC.ID))

	inbound, err := q.CreateRoute(ctx, bus.ID)
	require.NoError(t, err)
	require.NoError(t, q.AddRouteStop(ctx, inbound, 1, stopC.ID))
	require.NoError(t, q.AddRouteStop(ctx, inbound, 2, stopA.ID))

	parts, err := q.RouteParts(ctx, bus.ID)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	require.Len(t, parts[0], 3)
	assert.Equal(t, stopA.ID, parts[0][0].ID)
	assert.Equal(t, stopB.ID, parts[0][1].ID)
	assert.Equal(t, stopC.ID, parts[0][2].ID)

	require.Len(t, parts[1], 2)
	assert.Equal(t, stopC.ID, parts[1][0].ID)
	assert.Equal(t, stopA.ID, parts[1][1].ID)
}

func TestScheduleEntriesSortedAscending(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	q := client.Queries

	stop, err := q.CreateStop(ctx, CreateStopParams{Name: "Market", ExternalID: "m"})
	require.NoError(t, err)
	bus, err := q.CreateBus(ctx, "5", true)
	require.NoError(t, err)

	require.NoError(t, q.AddScheduleEntry(ctx, 3, stop.ID, bus.ID, models.NewTimeOfDay(16, 40)))
	require.NoError(t, q.AddScheduleEntry(ctx, 3, stop.ID, bus.ID, models.NewTimeOfDay(6, 5)))
	require.NoError(t, q.AddScheduleEntry(ctx, 3, stop.ID, bus.ID, models.NewTimeOfDay(11, 0)))
	require.NoError(t, q.AddScheduleEntry(ctx, 4, stop.ID, bus.ID, models.NewTimeOfDay(7, 0)))

	times, err := q.ScheduleEntries(ctx, stop.ID, bus.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []models.TimeOfDay{
		models.NewTimeOfDay(6, 5),
		models.NewTimeOfDay(11, 0),
		models.NewTimeOfDay(16, 40),
	}, times)
}

func TestHolidayOverride(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	q := client.Queries

	mayDay := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, q.AddHoliday(ctx, mayDay, "Labour Day", 7))

	day, overridden, err := q.HolidayOverride(ctx, mayDay)
	require.NoError(t, err)
	assert.True(t, overridden)
	assert.Equal(t, 7, day)

	_, overridden, err = q.HolidayOverride(ctx, mayDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, overridden)
}
