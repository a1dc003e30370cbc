package routing

import (
	"context"
	"fmt"

	"github.com/avdivo/nearest-bus/internal/models"
)

// Resolve enumerates every (bus, departure stop, arrival stop) combination
// that plausibly connects the two named places, classified by directional
// quality but not yet filtered. Callers wanting only the best tier use Best.
func (e *Engine) Resolve(ctx context.Context, startName, finishName string) ([]models.CandidateRoute, error) {
	startNames, finishNames, err := e.ExpandPair(ctx, startName, finishName)
	if err != nil {
		return nil, err
	}

	startStops, err := e.stopsForNames(ctx, startNames)
	if err != nil {
		return nil, err
	}
	finishStops, err := e.stopsForNames(ctx, finishNames)
	if err != nil {
		return nil, err
	}
	if len(startStops) == 0 || len(finishStops) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(startStops))
	for i, s := range startStops {
		ids[i] = s.ID
	}
	buses, err := e.store.BusesTouching(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading buses for departure stops: %w", err)
	}

	var candidates []models.CandidateRoute
	for _, bus := range buses {
		parts, err := e.store.RouteParts(ctx, bus.ID)
		if err != nil {
			return nil, fmt.Errorf("loading route of bus %s: %w", bus.Label, err)
		}
		for _, from := range startStops {
			for _, to := range finishStops {
				if candidate, ok := classify(bus, parts, from, to); ok {
					candidates = append(candidates, candidate)
				}
			}
		}
	}
	return candidates, nil
}

// Best resolves the pair and keeps only the best priority class present:
// direct beats cross-part beats reversed loop, and only one quality tier is
// ever surfaced. An empty report means "no direct service", not an error.
func (e *Engine) Best(ctx context.Context, startName, finishName string) (models.RouteReport, error) {
	candidates, err := e.Resolve(ctx, startName, finishName)
	if err != nil || len(candidates) == 0 {
		return models.RouteReport{}, err
	}

	best := models.PriorityNone
	for _, c := range candidates {
		if c.Priority < best {
			best = c.Priority
		}
	}
	if best == models.PriorityNone {
		return models.RouteReport{}, nil
	}

	report := models.RouteReport{Priority: best}
	for _, c := range candidates {
		if c.Priority == best {
			report.Upsert(c)
		}
	}
	return report, nil
}

// stopsForNames materializes stop records for the expanded names, preserving
// name order (literal name first) and deduplicating by identity.
func (e *Engine) stopsForNames(ctx context.Context, names []string) ([]models.Stop, error) {
	var stops []models.Stop
	seen := make(map[int64]bool)
	for _, name := range names {
		named, err := e.store.StopsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("loading stops named %q: %w", name, err)
		}
		for _, s := range named {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			stops = append(stops, s)
		}
	}
	return stops, nil
}

// classify grades one (bus, from, to) combination against the bus's route
// parts. Evaluation order matters and mirrors the production behavior:
// a cross-part match grades 2, a same-part match overrides it to 3 (loop)
// when the bus has a second part, and an in-order same-part match wins
// outright as 1. A reversed order on a single-part bus is no match at all:
// that bus never comes back.
func classify(bus models.Bus, parts []models.RoutePart, from, to models.Stop) (models.CandidateRoute, bool) {
	servesFinish := false
	for _, part := range parts {
		if part.IndexOf(to.ID) >= 0 {
			servesFinish = true
			break
		}
	}
	if !servesFinish {
		return models.CandidateRoute{}, false
	}

	priority := models.PriorityNone
	var analysis models.RoutePart

	if len(parts) == 2 {
		startInFirst := parts[0].IndexOf(from.ID) >= 0
		finishInFirst := parts[0].IndexOf(to.ID) >= 0
		startInSecond := parts[1].IndexOf(from.ID) >= 0
		finishInSecond := parts[1].IndexOf(to.ID) >= 0

		if (startInFirst && finishInSecond) || (startInSecond && finishInFirst) {
			priority = models.PriorityCrossPart
			if startInFirst {
				analysis = parts[0]
			} else {
				analysis = parts[1]
			}
		}
	}

	for _, part := range parts {
		startIdx := part.IndexOf(from.ID)
		finishIdx := part.IndexOf(to.ID)
		if startIdx < 0 || finishIdx < 0 {
			continue
		}
		if startIdx < finishIdx {
			priority = models.PriorityDirect
			analysis = part
			break
		}
		if len(parts) > 1 {
			priority = models.PriorityLoop
			analysis = part
		}
	}

	if priority == models.PriorityNone || analysis == nil {
		return models.CandidateRoute{}, false
	}
	return models.CandidateRoute{
		Priority:  priority,
		Bus:       bus,
		From:      from,
		To:        to,
		FirstStop: analysis[0],
		LastStop:  analysis[len(analysis)-1],
	}, true
}
