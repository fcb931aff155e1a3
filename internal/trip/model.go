// README: Core trip domain records: preferences, offers, enrichment values.
package trip

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type HolidayType string

const (
	HolidayBeach       HolidayType = "Beach"
	HolidayAdventure   HolidayType = "Adventure"
	HolidayCityBreak   HolidayType = "City Break"
	HolidaySkiing      HolidayType = "Skiing"
	HolidayParty       HolidayType = "Party"
	HolidayBackpacking HolidayType = "Backpacking"
	HolidayFamily      HolidayType = "Family"
	HolidayFestival    HolidayType = "Festival"
	HolidayRomantic    HolidayType = "Romantic"
	HolidayCruise      HolidayType = "Cruise"
	HolidayAny         HolidayType = "Any"
)

// Preferences is the immutable user input for one planning session.
// It must be validated before any node runs; nodes only read it.
type Preferences struct {
	Destination   string      `json:"destination"`
	DepartureCity string      `json:"departure_city"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       time.Time   `json:"end_date"`
	PartySize     string      `json:"party_size"`
	HolidayType   HolidayType `json:"holiday_type"`
	BudgetTier    BudgetTier  `json:"budget_tier"`
	Comments      string      `json:"comments"`
}

var (
	ErrMissingDestination = errors.New("trip: destination is required")
	ErrMissingDeparture   = errors.New("trip: departure city is required")
	ErrInvalidDateRange   = errors.New("trip: end date must not be before start date")
)

// Validate rejects malformed preferences before the workflow is invoked.
// Date problems are a caller concern, never a node concern.
func (p Preferences) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return ErrMissingDestination
	}
	if strings.TrimSpace(p.DepartureCity) == "" {
		return ErrMissingDeparture
	}
	if p.EndDate.Before(p.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Duration is the trip length in days, inclusive of both endpoints.
func (p Preferences) Duration() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// Passengers maps the symbolic party-size bucket to a concrete headcount.
// Ranges map to their midpoint; unknown buckets default to 2.
func (p Preferences) Passengers() int {
	switch p.PartySize {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4-6":
		return 5
	case "7-10":
		return 8
	case "10+":
		return 12
	default:
		return 2
	}
}

// Hotel is an immutable hotel offer. Lists of these are filtered and
// reordered downstream; individual records are never mutated.
type Hotel struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Link          string   `json:"link"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
}

// Flight is an immutable flight offer (round trip for the whole party).
type Flight struct {
	Airline          string  `json:"airline"`
	PriceTotal       float64 `json:"price_total"`
	PricePerPerson   float64 `json:"price_per_person"`
	Duration         string  `json:"duration"`
	Stops            string  `json:"stops"`
	Link             string  `json:"link"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	Passengers       int     `json:"passengers"`
}

// Alternate is a suggested replacement destination, advisory only.
type Alternate struct {
	Name     string `json:"name"`
	Reason   string `json:"reason"`
	Distance string `json:"distance"`
}

// Link is a travel-guide search result.
type Link struct {
	Title   string `json:"title"`
	URL     string `json:"link"`
	Snippet string `json:"snippet"`
}

// ChatEntry is one question/response pair in the session chat history.
type ChatEntry struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// LogEntry records one node execution for observability. Entries are
// append-only and never drive control flow.
type LogEntry struct {
	Node      string        `json:"node"`
	Timestamp time.Time     `json:"timestamp"`
	Status    string        `json:"status"`
	Duration  time.Duration `json:"duration"`
}

// FormatINR renders an amount the way prompts and summaries expect it.
func FormatINR(amount float64) string {
	n := int64(amount + 0.5)
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return "₹" + s
}
