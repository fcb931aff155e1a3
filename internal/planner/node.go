// README: Node contract and shared node plumbing (deps, timeouts, logging).
package planner

import (
	"context"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/search"
	"wayfare/internal/trip"
	"wayfare/internal/weather"
)

// Node names double as re-invocation identifiers for the patch executor.
const (
	NodeFetchWeather      = "fetch_weather"
	NodeAnalyzeWeather    = "analyze_weather"
	NodeSuggestAlternates = "suggest_alternates"
	NodeSearchHotels      = "search_hotels"
	NodeSearchFlights     = "search_flights"
	NodeBudgetFilter      = "budget_filter"
	NodePreferenceRanking = "preference_ranking"
	NodeGenerateItinerary = "generate_itinerary"
	NodeActivities        = "activity_suggestions"
	NodePackingList       = "packing_list"
	NodeFoodCulture       = "food_culture"
	NodeUsefulLinks       = "useful_links"
	NodeChat              = "chat"
)

// Node is a single state-transforming step. Apply reads the state fields it
// documents needing and returns a partial update; it must degrade internally
// and never panic past its boundary.
type Node interface {
	Name() string
	Apply(ctx context.Context, st *trip.State) trip.Update
}

// Deps bundles the external collaborators every node draws from.
type Deps struct {
	Weather weather.Provider
	Hotels  search.HotelProvider
	Flights search.FlightProvider
	Links   search.LinkProvider
	Gen     ai.Generator

	// Score configures the favorability computation.
	Score weather.ScoreConfig

	// CallTimeout bounds each collaborator call from within a node.
	CallTimeout time.Duration
}

const defaultCallTimeout = 15 * time.Second

// callCtx derives the per-collaborator-call context.
func (d Deps) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	t := d.CallTimeout
	if t <= 0 {
		t = defaultCallTimeout
	}
	return context.WithTimeout(ctx, t)
}

func successLog(node string, start time.Time) trip.LogEntry {
	return trip.LogEntry{Node: node, Timestamp: time.Now(), Status: "success", Duration: time.Since(start)}
}

func failureLog(node string, start time.Time) trip.LogEntry {
	return trip.LogEntry{Node: node, Timestamp: time.Now(), Status: "failure", Duration: time.Since(start)}
}

func ptr[T any](v T) *T { return &v }
