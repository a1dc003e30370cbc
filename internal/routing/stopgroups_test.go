package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNameNotGrouped(t *testing.T) {
	groups := [][]string{{"Plaza", "Station"}}
	assert.Equal(t, []string{"Market"}, ExpandName(groups, "Market"))
}

func TestExpandNameQueriedNameComesFirst(t *testing.T) {
	groups := [][]string{{"Plaza", "Market", "Station"}}
	assert.Equal(t, []string{"Market", "Plaza", "Station"}, ExpandName(groups, "Market"))
}

func TestExpandNameUnionsAllContainingGroups(t *testing.T) {
	groups := [][]string{
		{"Market", "Plaza"},
		{"Market", "Station"},
		{"Lake", "Forest"},
	}
	assert.Equal(t, []string{"Market", "Plaza", "Station"}, ExpandName(groups, "Market"))
}

func TestExpandNameStableRegardlessOfCallOrder(t *testing.T) {
	groups := [][]string{{"Plaza", "Market", "Station"}}
	first := ExpandName(groups, "Market")
	second := ExpandName(groups, "Market")
	assert.Equal(t, first, second)
}

func TestExpandNameFoldsCase(t *testing.T) {
	groups := [][]string{{"Рынок", "Площадь"}}
	assert.Equal(t, []string{"рынок", "Площадь"}, ExpandName(groups, "рынок"))
}

func TestExpandPairIdenticalNames(t *testing.T) {
	engine := newTestEngine(newFakeStore())
	_, _, err := engine.ExpandPair(context.Background(), "Market", "Market")
	assert.ErrorIs(t, err, ErrIdenticalStops)
}

func TestExpandPairCollapsesSharedGroup(t *testing.T) {
	// Market and Plaza are 300m apart and grouped; asking to go from one to
	// the other must not expand either side, or the request would reach
	// itself through the group.
	store := newFakeStore()
	store.groups = [][]string{{"Market", "Plaza", "Station"}}
	engine := newTestEngine(store)

	startNames, finishNames, err := engine.ExpandPair(context.Background(), "Market", "Plaza")
	require.NoError(t, err)
	assert.Equal(t, []string{"Market"}, startNames)
	assert.Equal(t, []string{"Plaza"}, finishNames)
}

func TestExpandPairIndependentGroups(t *testing.T) {
	store := newFakeStore()
	store.groups = [][]string{
		{"Market", "Plaza"},
		{"School", "College"},
	}
	engine := newTestEngine(store)

	startNames, finishNames, err := engine.ExpandPair(context.Background(), "Market", "School")
	require.NoError(t, err)
	assert.Equal(t, []string{"Market", "Plaza"}, startNames)
	assert.Equal(t, []string{"School", "College"}, finishNames)
}
