// README: The workflow graph: nodes, edges, one conditional fork, run loop.
package planner

import (
	"context"
	"fmt"
	"log"

	"wayfare/internal/trip"
)

// terminal marks the end of the graph.
const terminal = ""

// graph is a directed node graph with a single entry point, plain edges and
// at most one conditional edge per node. Execution is strictly sequential;
// each node's partial update is merged before the next node runs.
type graph struct {
	entry string
	nodes map[string]Node
	edges map[string]string
	conds map[string]func(*trip.State) string
}

// buildGraph wires the main planning flow:
//
//	fetch_weather -> analyze_weather
//	               -> (favorable ? search_hotels : suggest_alternates)
//	suggest_alternates -> search_hotels
//	search_hotels -> search_flights -> budget_filter
//	             -> preference_ranking -> generate_itinerary -> terminal
//
// Both branches of the fork converge on search_hotels: alternates are
// advisory only and never change the searched destination.
func buildGraph(nodes map[string]Node) *graph {
	return &graph{
		entry: NodeFetchWeather,
		nodes: nodes,
		edges: map[string]string{
			NodeFetchWeather:      NodeAnalyzeWeather,
			NodeSuggestAlternates: NodeSearchHotels,
			NodeSearchHotels:      NodeSearchFlights,
			NodeSearchFlights:     NodeBudgetFilter,
			NodeBudgetFilter:      NodePreferenceRanking,
			NodePreferenceRanking: NodeGenerateItinerary,
			NodeGenerateItinerary: terminal,
		},
		conds: map[string]func(*trip.State) string{
			NodeAnalyzeWeather: func(st *trip.State) string {
				if st.WeatherFavorable {
					return NodeSearchHotels
				}
				return NodeSuggestAlternates
			},
		},
	}
}

// run executes the graph to its terminal point. The executor never retries:
// nodes degrade internally, and a failed itinerary still reaches the
// terminal with workflow status carrying the outcome.
func (g *graph) run(ctx context.Context, st *trip.State) error {
	cur := g.entry
	// Step cap guards against a miswired edge map.
	for steps := 0; cur != terminal; steps++ {
		if steps > len(g.nodes) {
			return fmt.Errorf("graph did not terminate after %d steps", steps)
		}
		node, ok := g.nodes[cur]
		if !ok {
			return fmt.Errorf("unknown node %q", cur)
		}

		st.Apply(applyNode(ctx, node, st))

		if cond, ok := g.conds[cur]; ok {
			cur = cond(st)
			continue
		}
		next, ok := g.edges[cur]
		if !ok {
			return fmt.Errorf("node %q has no outgoing edge", cur)
		}
		cur = next
	}
	return nil
}

// applyNode invokes a node and enforces the never-raise contract: a panic
// inside a node becomes an error entry, not a crash of the session.
func applyNode(ctx context.Context, n Node, st *trip.State) (upd trip.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("node %s panicked: %v", n.Name(), r)
			upd = trip.Update{
				Errors: []string{fmt.Sprintf("%s failed: %v", n.Name(), r)},
			}
		}
	}()
	return n.Apply(ctx, st)
}
