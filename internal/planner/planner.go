// README: Planner facade: full runs, single-node patches, offer re-selection.
package planner

import (
	"context"
	"errors"
	"fmt"

	"wayfare/internal/trip"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrChoiceOutside = errors.New("choice index out of range")
)

// Planner owns the node registry and the workflow graph. It is safe to share
// across sessions; all per-trip data lives in the state passed in.
type Planner struct {
	nodes map[string]Node
	graph *graph
}

// New builds the planner with every node wired to the shared dependencies.
func New(deps Deps) *Planner {
	nodes := map[string]Node{}
	for _, n := range []Node{
		fetchWeatherNode{deps: deps},
		analyzeWeatherNode{deps: deps},
		suggestAlternatesNode{deps: deps},
		searchHotelsNode{deps: deps},
		searchFlightsNode{deps: deps},
		budgetFilterNode{deps: deps},
		preferenceRankingNode{deps: deps},
		generateItineraryNode{deps: deps},
		activitiesNode{deps: deps},
		packingListNode{deps: deps},
		foodCultureNode{deps: deps},
		usefulLinksNode{deps: deps},
		chatNode{deps: deps},
	} {
		nodes[n.Name()] = n
	}
	return &Planner{
		nodes: nodes,
		graph: buildGraph(nodes),
	}
}

// Run executes the full planning graph against a fresh or reset state.
func (p *Planner) Run(ctx context.Context, st *trip.State) error {
	if err := st.Preferences.Validate(); err != nil {
		return err
	}
	st.Status = trip.StatusInProgress
	return p.graph.run(ctx, st)
}

// Invoke re-runs one named node against the current state. This is the patch
// path: no graph traversal, just the node and its merge. Callers that need a
// chain of nodes re-run compose Invoke calls.
func (p *Planner) Invoke(ctx context.Context, name string, st *trip.State) error {
	node, ok := p.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	st.Apply(applyNode(ctx, node, st))
	return nil
}

// replanChain is the fixed replay order after a hotel search redo: every
// node downstream of the search must see the new candidates.
var replanChain = []string{
	NodeSearchHotels,
	NodeBudgetFilter,
	NodePreferenceRanking,
	NodeGenerateItinerary,
}

// ReplanHotels redoes the hotel leg end to end and regenerates the
// itinerary so no stale derived field survives.
func (p *Planner) ReplanHotels(ctx context.Context, st *trip.State) error {
	for _, name := range replanChain {
		if err := p.Invoke(ctx, name, st); err != nil {
			return err
		}
	}
	return nil
}

// ChooseHotel promotes one of the selected hotels to chosen and re-derives
// the total cost.
func (p *Planner) ChooseHotel(st *trip.State, index int) error {
	if index < 0 || index >= len(st.SelectedHotels) {
		return fmt.Errorf("%w: hotel %d of %d", ErrChoiceOutside, index, len(st.SelectedHotels))
	}
	st.ChosenHotel = st.SelectedHotels[index]
	st.RecomputeTotalCost()
	return nil
}

// ChooseFlight promotes one of the selected flights to chosen and re-derives
// the total cost.
func (p *Planner) ChooseFlight(st *trip.State, index int) error {
	if index < 0 || index >= len(st.SelectedFlights) {
		return fmt.Errorf("%w: flight %d of %d", ErrChoiceOutside, index, len(st.SelectedFlights))
	}
	st.ChosenFlight = st.SelectedFlights[index]
	st.RecomputeTotalCost()
	return nil
}
