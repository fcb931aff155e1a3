// README: Offer pipeline nodes: search, budget filter, preference ranking.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/search"
	"wayfare/internal/trip"
)

// searchHotelsNode queries the hotel provider, falling back to synthetic
// offers so downstream nodes always have candidates.
// Reads: Preferences. Writes: HotelResults.
type searchHotelsNode struct {
	deps Deps
}

func (n searchHotelsNode) Name() string { return NodeSearchHotels }

func (n searchHotelsNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	hotels, err := n.deps.Hotels.SearchHotels(cctx, prefs.Destination, prefs.StartDate, prefs.EndDate, prefs.PartySize)

	upd := trip.Update{Logs: []trip.LogEntry{successLog(n.Name(), start)}}
	if err != nil {
		upd.Warnings = []string{fmt.Sprintf("Hotel search failed, using fallback offers: %v", err)}
	}
	if len(hotels) == 0 {
		hotels = search.FallbackHotels(prefs.Destination)
	}
	upd.HotelResults = &hotels
	return upd
}

// searchFlightsNode queries the flight provider with the same fallback
// guarantee as hotels.
// Reads: Preferences. Writes: FlightResults.
type searchFlightsNode struct {
	deps Deps
}

func (n searchFlightsNode) Name() string { return NodeSearchFlights }

func (n searchFlightsNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	flights, err := n.deps.Flights.SearchFlights(cctx, prefs.DepartureCity, prefs.Destination, prefs.StartDate, prefs.EndDate, prefs.PartySize)

	upd := trip.Update{Logs: []trip.LogEntry{successLog(n.Name(), start)}}
	if err != nil {
		upd.Warnings = []string{fmt.Sprintf("Flight search failed, using fallback offers: %v", err)}
	}
	if len(flights) == 0 {
		flights = search.FallbackFlights(prefs.DepartureCity, prefs.Destination, prefs.Passengers())
	}
	upd.FlightResults = &flights
	return upd
}

// budgetFilterNode partitions candidates by the tier's price bands. When a
// band leaves too few candidates the filter relaxes to the cheapest of the
// unfiltered list rather than returning a too-small set.
// Reads: Preferences, HotelResults, FlightResults.
// Writes: BudgetHotels, BudgetFlights.
type budgetFilterNode struct {
	deps Deps
}

func (n budgetFilterNode) Name() string { return NodeBudgetFilter }

func (n budgetFilterNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	tier := st.Preferences.BudgetTier

	hotelBand := tier.HotelBand()
	var hotels []trip.Hotel
	for _, h := range st.HotelResults {
		if hotelBand.Contains(h.PricePerNight) {
			hotels = append(hotels, h)
		}
	}
	if len(hotels) < 3 {
		hotels = cheapestHotels(st.HotelResults, 10)
	}

	flightBand := tier.FlightBand()
	var flights []trip.Flight
	for _, f := range st.FlightResults {
		if flightBand.Contains(f.PriceTotal) {
			flights = append(flights, f)
		}
	}
	if len(flights) < 2 {
		flights = cheapestFlights(st.FlightResults, 5)
	}

	return trip.Update{
		BudgetHotels:  &hotels,
		BudgetFlights: &flights,
		Logs:          []trip.LogEntry{successLog(n.Name(), start)},
	}
}

func cheapestHotels(in []trip.Hotel, limit int) []trip.Hotel {
	out := append([]trip.Hotel(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func cheapestFlights(in []trip.Flight, limit int) []trip.Flight {
	out := append([]trip.Flight(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriceTotal < out[j].PriceTotal })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// rankingPayload is the structured ordering the generator is asked for.
type rankingPayload struct {
	TopHotels  []int `json:"top_hotels"`
	TopFlights []int `json:"top_flights"`
}

// preferenceRankingNode orders the budget-approved candidates, defaulting
// the chosen pair and deriving the total cost.
// Reads: Preferences, BudgetHotels, BudgetFlights.
// Writes: RankedHotels, RankedFlights, SelectedHotels, SelectedFlights,
// ChosenHotel, ChosenFlight, TotalCost.
type preferenceRankingNode struct {
	deps Deps
}

func (n preferenceRankingNode) Name() string { return NodePreferenceRanking }

func (n preferenceRankingNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()

	hotels := st.BudgetHotels
	if len(hotels) > 15 {
		hotels = hotels[:15]
	}
	flights := st.BudgetFlights
	if len(flights) > 8 {
		flights = flights[:8]
	}

	rankedHotels, rankedFlights, warning := n.rank(ctx, st, hotels, flights)

	selectedHotels := topHotels(rankedHotels, 3)
	selectedFlights := topFlights(rankedFlights, 3)

	var chosenHotel trip.Hotel
	if len(selectedHotels) > 0 {
		chosenHotel = selectedHotels[0]
	}
	var chosenFlight trip.Flight
	if len(selectedFlights) > 0 {
		chosenFlight = selectedFlights[0]
	}

	total := chosenHotel.PricePerNight*float64(st.Preferences.Duration()) + chosenFlight.PriceTotal

	upd := trip.Update{
		RankedHotels:    &rankedHotels,
		RankedFlights:   &rankedFlights,
		SelectedHotels:  &selectedHotels,
		SelectedFlights: &selectedFlights,
		ChosenHotel:     &chosenHotel,
		ChosenFlight:    &chosenFlight,
		TotalCost:       &total,
		Logs:            []trip.LogEntry{successLog(n.Name(), start)},
	}
	if warning != "" {
		upd.Warnings = []string{warning}
	}
	return upd
}

// rank asks the generator for index orderings and falls back to a
// deterministic sort when the response cannot be used.
func (n preferenceRankingNode) rank(ctx context.Context, st *trip.State, hotels []trip.Hotel, flights []trip.Flight) ([]trip.Hotel, []trip.Flight, string) {
	prompt := n.buildPrompt(st, hotels, flights)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	result, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return sortHotels(hotels, 5), sortFlights(flights, 3), fmt.Sprintf("Ranking fell back to deterministic sort: %v", err)
	}
	var payload rankingPayload
	if perr := ai.UnmarshalObject(result, &payload); perr != nil {
		return sortHotels(hotels, 5), sortFlights(flights, 3), fmt.Sprintf("Ranking fell back to deterministic sort: %v", perr)
	}

	rankedHotels := pickHotels(hotels, payload.TopHotels, 5)
	rankedFlights := pickFlights(flights, payload.TopFlights, 3)

	// A list the model omitted or mangled must not erase candidates the
	// budget filter kept; only that list reverts to the deterministic sort.
	var fellBack []string
	if len(rankedHotels) == 0 && len(hotels) > 0 {
		rankedHotels = sortHotels(hotels, 5)
		fellBack = append(fellBack, "hotels")
	}
	if len(rankedFlights) == 0 && len(flights) > 0 {
		rankedFlights = sortFlights(flights, 3)
		fellBack = append(fellBack, "flights")
	}
	if len(fellBack) > 0 {
		return rankedHotels, rankedFlights, "Ranking fell back to deterministic sort for " + strings.Join(fellBack, " and ")
	}
	return rankedHotels, rankedFlights, ""
}

func (n preferenceRankingNode) buildPrompt(st *trip.State, hotels []trip.Hotel, flights []trip.Flight) string {
	type hotelBrief struct {
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Rating float64 `json:"rating"`
	}
	type flightBrief struct {
		Airline  string  `json:"airline"`
		Price    float64 `json:"price"`
		Duration string  `json:"duration"`
	}

	hb := make([]hotelBrief, 0, len(hotels))
	for _, h := range hotels {
		hb = append(hb, hotelBrief{Name: h.Name, Price: h.PricePerNight, Rating: h.Rating})
	}
	fb := make([]flightBrief, 0, len(flights))
	for _, f := range flights {
		fb = append(fb, flightBrief{Airline: f.Airline, Price: f.PriceTotal, Duration: f.Duration})
	}

	hotelJSON, _ := json.MarshalIndent(hb, "", "  ")
	flightJSON, _ := json.MarshalIndent(fb, "", "  ")
	holiday := st.Preferences.HolidayType

	return fmt.Sprintf(`Rank these options for a %s trip:

HOTELS:
%s

FLIGHTS:
%s

Return ONLY a JSON object:
{
    "top_hotels": [0, 2, 1, 4, 3],
    "top_flights": [1, 0, 2]
}
where the arrays hold the indices of the top 5 hotels and top 3 flights in
preference order.

Consider: value for money, ratings, suitability for %s.`, holiday, hotelJSON, flightJSON, holiday)
}

// pickHotels resolves an index ordering, dropping out-of-range indices.
func pickHotels(in []trip.Hotel, indices []int, limit int) []trip.Hotel {
	var out []trip.Hotel
	for _, i := range indices {
		if i < 0 || i >= len(in) {
			continue
		}
		out = append(out, in[i])
		if len(out) >= limit {
			break
		}
	}
	return out
}

func pickFlights(in []trip.Flight, indices []int, limit int) []trip.Flight {
	var out []trip.Flight
	for _, i := range indices {
		if i < 0 || i >= len(in) {
			continue
		}
		out = append(out, in[i])
		if len(out) >= limit {
			break
		}
	}
	return out
}

// sortHotels is the deterministic ranking fallback: rating descending, then
// price ascending.
func sortHotels(in []trip.Hotel, limit int) []trip.Hotel {
	out := append([]trip.Hotel(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].PricePerNight < out[j].PricePerNight
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// sortFlights is the deterministic ranking fallback: price ascending.
func sortFlights(in []trip.Flight, limit int) []trip.Flight {
	out := append([]trip.Flight(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriceTotal < out[j].PriceTotal })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func topHotels(in []trip.Hotel, limit int) []trip.Hotel {
	if len(in) > limit {
		return in[:limit]
	}
	return in
}

func topFlights(in []trip.Flight, limit int) []trip.Flight {
	if len(in) > limit {
		return in[:limit]
	}
	return in
}
