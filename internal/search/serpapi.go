// README: SerpAPI client for Google Flights results and travel-guide links.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wayfare/internal/cache"
	"wayfare/internal/trip"
)

const defaultSerpURL = "https://serpapi.com/search"

// SerpAPI implements flight and link search against serpapi.com.
type SerpAPI struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	cache   cache.Cache
}

// NewSerpAPI creates a SerpAPI client. Pass cache.Nop{} (or nil) to
// disable response caching.
func NewSerpAPI(apiKey string, timeout time.Duration, c cache.Cache) *SerpAPI {
	if c == nil {
		c = cache.Nop{}
	}
	return &SerpAPI{
		apiKey:  apiKey,
		baseURL: defaultSerpURL,
		httpc:   &http.Client{Timeout: timeout},
		cache:   c,
	}
}

func (s *SerpAPI) get(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", s.apiKey)
	key := "serp:" + params.Encode()

	if cached, ok := s.cache.Get(ctx, key); ok {
		if err := json.Unmarshal([]byte(cached), out); err == nil {
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("serpapi request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serpapi request failed: status %d", resp.StatusCode)
	}

	var buf json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&buf); err != nil {
		return fmt.Errorf("serpapi decode failed: %w", err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("serpapi decode failed: %w", err)
	}
	s.cache.Set(ctx, key, string(buf), 15*time.Minute)
	return nil
}

type serpFlightEntry struct {
	Flights []struct {
		Airline          string `json:"airline"`
		DepartureAirport struct {
			Name string `json:"name"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Name string `json:"name"`
		} `json:"arrival_airport"`
	} `json:"flights"`
	TotalDuration int     `json:"total_duration"`
	Price         float64 `json:"price"`
	Layovers      []struct {
		Name string `json:"name"`
	} `json:"layovers"`
}

type serpFlightsResponse struct {
	BestFlights  []serpFlightEntry `json:"best_flights"`
	OtherFlights []serpFlightEntry `json:"other_flights"`
}

// SearchFlights queries Google Flights through SerpAPI and maps the top
// results to offers. Prices are round-trip totals for the whole party.
func (s *SerpAPI) SearchFlights(ctx context.Context, departureCity, destination string, outbound, inbound time.Time, partySize string) ([]trip.Flight, error) {
	passengers := trip.Preferences{PartySize: partySize}.Passengers()

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", AirportCode(departureCity))
	params.Set("arrival_id", AirportCode(destination))
	params.Set("outbound_date", outbound.Format("2006-01-02"))
	params.Set("return_date", inbound.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(passengers))
	params.Set("currency", "INR")
	params.Set("hl", "en")
	params.Set("gl", "in")

	var raw serpFlightsResponse
	if err := s.get(ctx, params, &raw); err != nil {
		return nil, err
	}

	entries := append(raw.BestFlights, raw.OtherFlights...)
	var flights []trip.Flight
	for _, entry := range entries {
		if len(entry.Flights) == 0 {
			continue
		}
		first := entry.Flights[0]

		hours := entry.TotalDuration / 60
		minutes := entry.TotalDuration % 60
		duration := fmt.Sprintf("%dm", minutes)
		if hours > 0 {
			duration = fmt.Sprintf("%dh %dm", hours, minutes)
		}

		stops := "Non-stop"
		if len(entry.Layovers) > 0 {
			stops = fmt.Sprintf("%d stop(s)", len(entry.Layovers))
		}

		price := entry.Price
		if price == 0 {
			price = 15000
		}

		flights = append(flights, trip.Flight{
			Airline:          first.Airline,
			PriceTotal:       price,
			PricePerPerson:   price / float64(passengers),
			Duration:         duration,
			Stops:            stops,
			Link:             "https://www.google.com/travel/flights",
			DepartureAirport: first.DepartureAirport.Name,
			ArrivalAirport:   first.ArrivalAirport.Name,
			Passengers:       passengers,
		})
		if len(flights) >= 10 {
			break
		}
	}

	return flights, nil
}

type serpLinksResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// SearchLinks runs a plain Google search for the topic and returns the top
// organic results.
func (s *SerpAPI) SearchLinks(ctx context.Context, topic string) ([]trip.Link, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", topic)
	params.Set("gl", "in")
	params.Set("hl", "en")
	params.Set("num", "5")

	var raw serpLinksResponse
	if err := s.get(ctx, params, &raw); err != nil {
		return nil, err
	}

	var links []trip.Link
	for _, r := range raw.OrganicResults {
		links = append(links, trip.Link{Title: r.Title, URL: r.Link, Snippet: r.Snippet})
		if len(links) >= 5 {
			break
		}
	}
	return links, nil
}
