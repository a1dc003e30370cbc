// Package models holds the domain records shared by the schedule store,
// the routing engine, and the REST API.
package models

// Stop is a single physical bus stop. Several stops may share a display name
// (opposite sides of a road); identity is the database key, never the name.
type Stop struct {
	ID         int64
	Name       string
	ExternalID string
	IsTerminus bool
}

// Bus is one numbered city bus.
type Bus struct {
	ID     int64
	Label  string
	Active bool
}

// RoutePart is one directed leg of a bus route: its stops in travel order.
// A bus has one part (one-way or loop) or two (outbound and return).
type RoutePart []Stop

// IndexOf returns the position of the stop with the given ID within the part,
// or -1 when the part does not serve it.
func (p RoutePart) IndexOf(stopID int64) int {
	for i, s := range p {
		if s.ID == stopID {
			return i
		}
	}
	return -1
}

// Priority ranks how well a candidate departure→arrival match fits the
// requested direction of travel. Lower is better.
type Priority int

const (
	// PriorityDirect: both stops on the same part, in travel order.
	PriorityDirect Priority = 1
	// PriorityCrossPart: the named stops sit on different parts of a two-part
	// route; the rider boards one leg and the arrival is listed on the other.
	PriorityCrossPart Priority = 2
	// PriorityLoop: same part, reversed order; only meaningful when the bus
	// has a second part and eventually doubles back.
	PriorityLoop Priority = 3
	// PriorityNone marks a combination with no usable match. It never leaves
	// the resolver: candidates at this rank are dropped before reporting.
	PriorityNone Priority = 4
)

// Modifier tags a departure event with the reason its match needs
// disambiguation in the rendered answer. The string values are the wire
// contract consumed by the response renderers.
type Modifier string

const (
	// ModifierStartDiff: the departure stop was matched through a stop group,
	// its name is not the one the rider asked for.
	ModifierStartDiff Modifier = "start_deff"
	// ModifierFinishDiff: same for the arrival stop.
	ModifierFinishDiff Modifier = "finish_deff"
	// ModifierTerminusOne: cross-part match, the answer should name the
	// terminus of the boarded leg.
	ModifierTerminusOne Modifier = "final_stop_one"
	// ModifierTerminusTwo: loop match, the answer should name both ends.
	ModifierTerminusTwo Modifier = "final_stop_two"
	// ModifierBoth: the same bus also departs from a different stop that
	// shares this stop's display name; only the terminus tells them apart.
	ModifierBoth Modifier = "both"
)

// CandidateRoute is one (bus, departure stop, arrival stop) combination that
// survived classification, before the best-priority filter.
type CandidateRoute struct {
	Priority Priority
	Bus      Bus
	From     Stop
	To       Stop
	// FirstStop and LastStop are the termini of the part the match was
	// analyzed on, kept for disambiguation wording.
	FirstStop Stop
	LastStop  Stop
}

// BusLeg is one bus serving a departure stop within a route report.
type BusLeg struct {
	Bus       Bus
	To        Stop
	FirstStop Stop
	LastStop  Stop
}

// DepartureGroup collects the legs of every qualifying bus for one physical
// departure stop.
type DepartureGroup struct {
	From Stop
	Legs []BusLeg
}

// HasBus reports whether any leg of the group is served by the given bus.
func (g DepartureGroup) HasBus(busID int64) bool {
	for _, leg := range g.Legs {
		if leg.Bus.ID == busID {
			return true
		}
	}
	return false
}

// RouteReport is the filtered result of route resolution: every group holds
// candidates of the single best priority present.
type RouteReport struct {
	Priority Priority
	Groups   []DepartureGroup
}

// Empty reports whether resolution found no qualifying route. An empty report
// is the designed "no service" signal, not an error.
func (r RouteReport) Empty() bool {
	return len(r.Groups) == 0
}

// Upsert adds a candidate to the report, grouping by departure stop identity.
// A later candidate for a bus already present under the same departure stop
// replaces the earlier leg.
func (r *RouteReport) Upsert(c CandidateRoute) {
	leg := BusLeg{Bus: c.Bus, To: c.To, FirstStop: c.FirstStop, LastStop: c.LastStop}
	for gi := range r.Groups {
		if r.Groups[gi].From.ID != c.From.ID {
			continue
		}
		for li := range r.Groups[gi].Legs {
			if r.Groups[gi].Legs[li].Bus.ID == c.Bus.ID {
				r.Groups[gi].Legs[li] = leg
				return
			}
		}
		r.Groups[gi].Legs = append(r.Groups[gi].Legs, leg)
		return
	}
	r.Groups = append(r.Groups, DepartureGroup{From: c.From, Legs: []BusLeg{leg}})
}

// DepartureEvent is one departure within the windowed timetable, carrying
// everything a renderer needs to phrase the answer.
type DepartureEvent struct {
	Bus       Bus
	From      Stop
	To        Stop
	FirstStop Stop
	LastStop  Stop
	Modifiers []Modifier
}

// HasModifier reports whether the event carries the given tag.
func (e DepartureEvent) HasModifier(m Modifier) bool {
	for _, got := range e.Modifiers {
		if got == m {
			return true
		}
	}
	return false
}

// TimeSlot bundles every departure event sharing one absolute time mark.
type TimeSlot struct {
	Time   TimeOfDay
	Events []DepartureEvent
}

// Timetable is the windowed, time-ordered answer of the engine: the slots
// covered by the request window, wrapped past midnight when needed.
type Timetable []TimeSlot
