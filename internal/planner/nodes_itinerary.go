// README: Itinerary generation plus the independently callable enrichment nodes.
package planner

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"wayfare/internal/trip"
)

// generateItineraryNode produces the final narrative. This is the one node
// whose failure is fatal to the plan: it still returns gracefully, but sets
// the workflow status to failed.
// Reads: Preferences, ChosenHotel, ChosenFlight, WeatherAnalysis, TotalCost.
// Writes: Itinerary, Status.
type generateItineraryNode struct {
	deps Deps
}

func (n generateItineraryNode) Name() string { return NodeGenerateItinerary }

func (n generateItineraryNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences
	hotel := st.ChosenHotel
	flight := st.ChosenFlight

	prompt := fmt.Sprintf(`Create a detailed day-wise travel itinerary:

TRIP DETAILS:
- Destination: %s
- Duration: %d days
- Dates: %s to %s
- Holiday Type: %s
- Number of People: %s
- Budget: %s
- Comments: %s

SELECTED HOTEL:
- Name: %s
- Price: %s per night
- Total: %s

SELECTED FLIGHT:
- Airline: %s
- Price: %s (round trip)

WEATHER FORECAST:
%s

TOTAL ESTIMATED COST: %s

Create a comprehensive itinerary with:
1. Day 0 (Arrival): Travel details, check-in, evening activities
2. Days 1-%d: Morning, afternoon, evening activities for each day
3. Last Day (Departure): Check-out, last activities, return flight

For each day include:
- Specific activities and attractions
- Meal recommendations (breakfast, lunch, dinner spots)
- Estimated time for each activity
- Travel tips and local insights
- Downtime/rest periods

Make it detailed, practical, and exciting! Format in clear sections.`,
		prefs.Destination,
		prefs.Duration(),
		prefs.StartDate.Format("2006-01-02"), prefs.EndDate.Format("2006-01-02"),
		prefs.HolidayType,
		prefs.PartySize,
		prefs.BudgetTier,
		orDefault(prefs.Comments, "None"),
		orDefault(hotel.Name, "TBD"),
		trip.FormatINR(hotel.PricePerNight),
		trip.FormatINR(hotel.PricePerNight*float64(prefs.Duration())),
		orDefault(flight.Airline, "TBD"),
		trip.FormatINR(flight.PriceTotal),
		st.WeatherAnalysis,
		trip.FormatINR(st.TotalCost),
		prefs.Duration()-1,
	)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	itinerary, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil || itinerary == "" {
		if err == nil {
			err = fmt.Errorf("empty itinerary response")
		}
		return trip.Update{
			Itinerary: ptr("Failed to generate itinerary. Please try again."),
			Status:    ptr(trip.StatusFailed),
			Errors:    []string{fmt.Sprintf("Itinerary generation failed: %v", err)},
			Logs:      []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}

	return trip.Update{
		Itinerary: &itinerary,
		Status:    ptr(trip.StatusCompleted),
		Logs:      []trip.LogEntry{successLog(n.Name(), start)},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// truncate caps a prompt fragment, backing off to a rune boundary so the
// cut never produces invalid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}

// activitiesNode suggests experiences beyond the itinerary itself.
// Reads: Preferences, Itinerary. Writes: ActivitySuggestions.
type activitiesNode struct {
	deps Deps
}

func (n activitiesNode) Name() string { return NodeActivities }

func (n activitiesNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	prompt := fmt.Sprintf(`Suggest unique local activities for a %s trip to %s:

Duration: %d days
Itinerary: %s

Provide 8-10 specific activity suggestions with:
- Activity name
- Brief description
- Estimated cost in INR
- Best time to do it

Focus on experiences beyond typical tourist spots.`,
		prefs.HolidayType, prefs.Destination, prefs.Duration(), truncate(st.Itinerary, 500))

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	result, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return trip.Update{
			ActivitySuggestions: ptr(""),
			Warnings:            []string{fmt.Sprintf("Activity suggestions failed: %v", err)},
			Logs:                []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}
	return trip.Update{
		ActivitySuggestions: &result,
		Logs:                []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// packingListNode generates a weather-aware packing list.
// Reads: Preferences, WeatherSummary. Writes: PackingList.
type packingListNode struct {
	deps Deps
}

func (n packingListNode) Name() string { return NodePackingList }

func (n packingListNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	prompt := fmt.Sprintf(`Create a comprehensive packing list for:
- Destination: %s
- Duration: %d days
- Holiday Type: %s
- Weather: %s

Organize in categories:
1. Clothing
2. Toiletries & Personal Care
3. Electronics & Gadgets
4. Documents & Money
5. Health & Safety
6. Activity-Specific Items
7. Miscellaneous

Be specific and practical.`,
		prefs.Destination, prefs.Duration(), prefs.HolidayType, st.WeatherSummary)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	result, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return trip.Update{
			PackingList: ptr(""),
			Warnings:    []string{fmt.Sprintf("Packing list failed: %v", err)},
			Logs:        []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}
	return trip.Update{
		PackingList: &result,
		Logs:        []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// foodCultureNode generates a food and culture guide.
// Reads: Preferences. Writes: FoodCulture.
type foodCultureNode struct {
	deps Deps
}

func (n foodCultureNode) Name() string { return NodeFoodCulture }

func (n foodCultureNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	prompt := fmt.Sprintf(`Provide a food and culture guide for %s:

Budget: %s

Include:
1. MUST-TRY LOCAL DISHES (5-7 dishes with descriptions)
2. RECOMMENDED RESTAURANTS (budget-appropriate)
3. STREET FOOD GUIDE (safe options)
4. CULTURAL ETIQUETTE (dos and don'ts)
5. LOCAL CUSTOMS (greetings, tipping, dress code)
6. IMPORTANT PHRASES (if different language)

Be practical and respectful.`, prefs.Destination, prefs.BudgetTier)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	result, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return trip.Update{
			FoodCulture: ptr(""),
			Warnings:    []string{fmt.Sprintf("Food & culture guide failed: %v", err)},
			Logs:        []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}
	return trip.Update{
		FoodCulture: &result,
		Logs:        []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// usefulLinksNode fetches travel-guide links for the destination and month.
// Reads: Preferences. Writes: UsefulLinks.
type usefulLinksNode struct {
	deps Deps
}

func (n usefulLinksNode) Name() string { return NodeUsefulLinks }

func (n usefulLinksNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences
	topic := fmt.Sprintf("travel guide %s tips %s", prefs.Destination, prefs.StartDate.Format("January 2006"))

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	links, err := n.deps.Links.SearchLinks(cctx, topic)
	if err != nil {
		return trip.Update{
			UsefulLinks: &[]trip.Link{},
			Warnings:    []string{fmt.Sprintf("Link search failed: %v", err)},
			Logs:        []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}
	return trip.Update{
		UsefulLinks: &links,
		Logs:        []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// chatNode answers a question about the plan and appends to the chat
// history; history only ever grows.
// Reads: Preferences, Itinerary, SelectedHotels, SelectedFlights,
// ChosenHotel, ChosenFlight, TotalCost, UserQuestion.
// Writes: ChatResponse; appends one ChatEntry.
type chatNode struct {
	deps Deps
}

func (n chatNode) Name() string { return NodeChat }

func (n chatNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()

	var hotelNames, flightNames []string
	for _, h := range st.SelectedHotels {
		hotelNames = append(hotelNames, h.Name)
	}
	for _, f := range st.SelectedFlights {
		flightNames = append(flightNames, f.Airline)
	}

	prompt := fmt.Sprintf(`Context:
Destination: %s, %s holiday, %d days
Itinerary: %s
Selected Hotels: %v
Selected Flights: %v
Chosen Hotel: %s
Chosen Flight: %s
Total Cost: %s

User Question: %s

Provide a helpful, concise response. Keep it conversational and under 150 words.`,
		st.Preferences.Destination, st.Preferences.HolidayType, st.Preferences.Duration(),
		truncate(st.Itinerary, 1000),
		hotelNames, flightNames,
		orDefault(st.ChosenHotel.Name, "N/A"),
		orDefault(st.ChosenFlight.Airline, "N/A"),
		trip.FormatINR(st.TotalCost),
		st.UserQuestion)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	response, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return trip.Update{
			ChatResponse: ptr("Sorry, I couldn't process your question."),
			Warnings:     []string{fmt.Sprintf("Chat failed: %v", err)},
			Logs:         []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}

	return trip.Update{
		ChatResponse: &response,
		ChatEntries:  []trip.ChatEntry{{Question: st.UserQuestion, Response: response}},
		Logs:         []trip.LogEntry{successLog(n.Name(), start)},
	}
}
