package routing

import (
	"context"
	"fmt"

	"github.com/avdivo/nearest-bus/internal/utils"
)

// ExpandName expands a display name into every name treated as the same
// place for routing. The queried name always comes first so the renderer can
// prioritize the rider's own wording; the remaining members follow in group
// order, deduplicated. A name not in any group expands to itself alone.
func ExpandName(groups [][]string, name string) []string {
	expanded := []string{name}
	seen := map[string]bool{utils.FoldName(name): true}

	for _, group := range groups {
		if !containsName(group, name) {
			continue
		}
		for _, member := range group {
			key := utils.FoldName(member)
			if seen[key] {
				continue
			}
			seen[key] = true
			expanded = append(expanded, member)
		}
	}
	return expanded
}

// ExpandPair expands both endpoints of a request. Identical endpoints are a
// usage error. When the two names turn out to be co-located through a shared
// group (the expanded finish set contains the literal start, or vice versa),
// grouping is discarded and both sides collapse to their literal name: a
// place must not "reach itself" via group membership.
func (e *Engine) ExpandPair(ctx context.Context, startName, finishName string) (startNames, finishNames []string, err error) {
	if utils.SameName(startName, finishName) {
		return nil, nil, ErrIdenticalStops
	}

	groups, err := e.store.StopGroups(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading stop groups: %w", err)
	}

	startNames = ExpandName(groups, startName)
	finishNames = ExpandName(groups, finishName)

	if containsName(finishNames, startName) || containsName(startNames, finishName) {
		return []string{startName}, []string{finishName}, nil
	}
	return startNames, finishNames, nil
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if utils.SameName(candidate, name) {
			return true
		}
	}
	return false
}
