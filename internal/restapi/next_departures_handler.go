package restapi

import (
	"errors"
	"net/http"

	"github.com/avdivo/nearest-bus/internal/models"
	"github.com/avdivo/nearest-bus/internal/routing"
)

type departureEventEntry struct {
	Bus           string   `json:"bus"`
	DepartureStop string   `json:"departureStop"`
	ArrivalStop   string   `json:"arrivalStop"`
	FirstStop     string   `json:"firstStop"`
	LastStop      string   `json:"lastStop"`
	Modifiers     []string `json:"modifiers"`
}

type timeSlotEntry struct {
	Time   string                `json:"time"`
	Events []departureEventEntry `json:"events"`
}

func (api *RestAPI) nextDeparturesHandler(w http.ResponseWriter, r *http.Request) {
	pair := stopPairFromContext(r.Context())

	timetable, err := api.Engine.NextDepartures(r.Context(), pair.From, pair.To)
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

	slots := make([]timeSlotEntry, 0, len(timetable))
	for _, slot := range timetable {
		slots = append(slots, newTimeSlotEntry(slot))
	}
	api.sendResponse(w, r, map[string]any{"departures": slots})
}

func newTimeSlotEntry(slot models.TimeSlot) timeSlotEntry {
	entry := timeSlotEntry{
		Time:   slot.Time.String(),
		Events: make([]departureEventEntry, 0, len(slot.Events)),
	}
	for _, event := range slot.Events {
		modifiers := make([]string, 0, len(event.Modifiers))
		for _, m := range event.Modifiers {
			modifiers = append(modifiers, string(m))
		}
		entry.Events = append(entry.Events, departureEventEntry{
			Bus:           event.Bus.Label,
			DepartureStop: event.From.Name,
			ArrivalStop:   event.To.Name,
			FirstStop:     event.FirstStop.Name,
			LastStop:      event.LastStop.Name,
			Modifiers:     modifiers,
		})
	}
	return entry
}
