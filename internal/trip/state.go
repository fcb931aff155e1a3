// README: The session state record and the partial-update merge.
package trip

import (
	"wayfare/internal/weather"
)

type Status string

const (
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusWaitingUser Status = "waiting_user"
)

// State is the single mutable record threading through every node. It is
// owned by exactly one planning session and must only be touched by one
// node execution at a time; callers serialize access.
type State struct {
	Preferences Preferences `json:"preferences"`

	Weather          weather.Bundle `json:"weather_raw"`
	WeatherAnalysis  string         `json:"weather_analysis"`
	WeatherFavorable bool           `json:"weather_favorable"`
	WeatherScore     float64        `json:"weather_score"`
	WeatherSummary   string         `json:"weather_summary"`

	Alternates []Alternate `json:"alternate_destinations"`

	HotelResults  []Hotel  `json:"hotel_results"`
	FlightResults []Flight `json:"flight_results"`

	BudgetHotels  []Hotel  `json:"budget_approved_hotels"`
	BudgetFlights []Flight `json:"budget_approved_flights"`

	RankedHotels    []Hotel  `json:"ranked_hotels"`
	RankedFlights   []Flight `json:"ranked_flights"`
	SelectedHotels  []Hotel  `json:"selected_hotels"`
	SelectedFlights []Flight `json:"selected_flights"`

	// ChosenHotel/ChosenFlight hold copies of the picked offers; the zero
	// value (empty Name/Airline) means nothing is chosen yet.
	ChosenHotel  Hotel   `json:"chosen_hotel"`
	ChosenFlight Flight  `json:"chosen_flight"`
	TotalCost    float64 `json:"total_cost"`

	Itinerary string `json:"itinerary"`

	ActivitySuggestions string `json:"activity_suggestions"`
	PackingList         string `json:"packing_list"`
	FoodCulture         string `json:"food_culture_info"`
	UsefulLinks         []Link `json:"useful_links"`

	UserQuestion string      `json:"user_question"`
	ChatResponse string      `json:"chat_response"`
	ChatHistory  []ChatEntry `json:"chat_history"`

	CurrentNode string     `json:"current_node"`
	NodeLogs    []LogEntry `json:"node_logs"`
	Errors      []string   `json:"errors"`
	Warnings    []string   `json:"warnings"`

	Status Status `json:"workflow_status"`
}

// NewState creates the empty state for a fresh planning session.
func NewState(prefs Preferences) *State {
	return &State{
		Preferences: prefs,
		Status:      StatusInProgress,
	}
}

// RecomputeTotalCost derives the total from the chosen pair. Total cost is
// never settable directly; every chosen-offer change goes through here.
func (s *State) RecomputeTotalCost() {
	s.TotalCost = s.ChosenHotel.PricePerNight*float64(s.Preferences.Duration()) + s.ChosenFlight.PriceTotal
}

// Update is a node's partial return: a closed set of optional fields.
// nil pointer fields are left untouched by Apply; slice fields at the
// bottom are append-only.
type Update struct {
	Weather          *weather.Bundle
	WeatherAnalysis  *string
	WeatherFavorable *bool
	WeatherScore     *float64
	WeatherSummary   *string

	Alternates *[]Alternate

	HotelResults  *[]Hotel
	FlightResults *[]Flight

	BudgetHotels  *[]Hotel
	BudgetFlights *[]Flight

	RankedHotels    *[]Hotel
	RankedFlights   *[]Flight
	SelectedHotels  *[]Hotel
	SelectedFlights *[]Flight

	ChosenHotel  *Hotel
	ChosenFlight *Flight
	TotalCost    *float64

	Itinerary *string

	ActivitySuggestions *string
	PackingList         *string
	FoodCulture         *string
	UsefulLinks         *[]Link

	ChatResponse *string

	Status *Status

	// Append-only tails.
	ChatEntries []ChatEntry
	Logs        []LogEntry
	Errors      []string
	Warnings    []string
}

// Apply merges a partial update into the state. The merge is whole-record:
// it runs between node executions, never concurrently with one.
func (s *State) Apply(u Update) {
	if u.Weather != nil {
		s.Weather = *u.Weather
	}
	if u.WeatherAnalysis != nil {
		s.WeatherAnalysis = *u.WeatherAnalysis
	}
	if u.WeatherFavorable != nil {
		s.WeatherFavorable = *u.WeatherFavorable
	}
	if u.WeatherScore != nil {
		s.WeatherScore = *u.WeatherScore
	}
	if u.WeatherSummary != nil {
		s.WeatherSummary = *u.WeatherSummary
	}
	if u.Alternates != nil {
		s.Alternates = *u.Alternates
	}
	if u.HotelResults != nil {
		s.HotelResults = *u.HotelResults
	}
	if u.FlightResults != nil {
		s.FlightResults = *u.FlightResults
	}
	if u.BudgetHotels != nil {
		s.BudgetHotels = *u.BudgetHotels
	}
	if u.BudgetFlights != nil {
		s.BudgetFlights = *u.BudgetFlights
	}
	if u.RankedHotels != nil {
		s.RankedHotels = *u.RankedHotels
	}
	if u.RankedFlights != nil {
		s.RankedFlights = *u.RankedFlights
	}
	if u.SelectedHotels != nil {
		s.SelectedHotels = *u.SelectedHotels
	}
	if u.SelectedFlights != nil {
		s.SelectedFlights = *u.SelectedFlights
	}
	if u.ChosenHotel != nil {
		s.ChosenHotel = *u.ChosenHotel
	}
	if u.ChosenFlight != nil {
		s.ChosenFlight = *u.ChosenFlight
	}
	if u.TotalCost != nil {
		s.TotalCost = *u.TotalCost
	}
	if u.Itinerary != nil {
		s.Itinerary = *u.Itinerary
	}
	if u.ActivitySuggestions != nil {
		s.ActivitySuggestions = *u.ActivitySuggestions
	}
	if u.PackingList != nil {
		s.PackingList = *u.PackingList
	}
	if u.FoodCulture != nil {
		s.FoodCulture = *u.FoodCulture
	}
	if u.UsefulLinks != nil {
		s.UsefulLinks = *u.UsefulLinks
	}
	if u.ChatResponse != nil {
		s.ChatResponse = *u.ChatResponse
	}
	if u.Status != nil {
		s.Status = *u.Status
	}

	s.ChatHistory = append(s.ChatHistory, u.ChatEntries...)
	for _, l := range u.Logs {
		s.NodeLogs = append(s.NodeLogs, l)
		s.CurrentNode = l.Node
	}
	s.Errors = append(s.Errors, u.Errors...)
	s.Warnings = append(s.Warnings, u.Warnings...)
}
