package restapi

import (
	"errors"
	"net/http"

	"github.com/avdivo/nearest-bus/internal/models"
	"github.com/avdivo/nearest-bus/internal/routing"
)

type busLegEntry struct {
	Bus         string `json:"bus"`
	ArrivalStop string `json:"arrivalStop"`
	FirstStop   string `json:"firstStop"`
	LastStop    string `json:"lastStop"`
}

type departureGroupEntry struct {
	StopID   int64         `json:"stopId"`
	StopName string        `json:"stopName"`
	Buses    []busLegEntry `json:"buses"`
}

type routeReportEntry struct {
	Priority   int                   `json:"priority"`
	Departures []departureGroupEntry `json:"departures"`
}

func (api *RestAPI) bestRouteHandler(w http.ResponseWriter, r *http.Request) {
	pair := stopPairFromContext(r.Context())

	report, err := api.Engine.Best(r.Context(), pair.From, pair.To)
	if err != nil {
		if errors.Is(err, routing.ErrIdenticalStops) {
			api.validationErrorResponse(w, r, map[string][]string{
				"to": {"must differ from 'from'"},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, newRouteReportEntry(report))
}

func newRouteReportEntry(report models.RouteReport) routeReportEntry {
	entry := routeReportEntry{
		Priority:   int(report.Priority),
		Departures: []departureGroupEntry{},
	}
	for _, group := range report.Groups {
		groupEntry := departureGroupEntry{
			StopID:   group.From.ID,
			StopName: group.From.Name,
			Buses:    make([]busLegEntry, 0, len(group.Legs)),
		}
		for _, leg := range group.Legs {
			groupEntry.Buses = append(groupEntry.Buses, busLegEntry{
				Bus:         leg.Bus.Label,
				ArrivalStop: leg.To.Name,
				FirstStop:   leg.FirstStop.Name,
				LastStop:    leg.LastStop.Name,
			})
		}
		entry.Departures = append(entry.Departures, groupEntry)
	}
	if report.Empty() {
		entry.Priority = 0
	}
	return entry
}
