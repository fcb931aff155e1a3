// README: Deterministic fallback offers used when a search provider fails.
package search

import (
	"fmt"
	"strings"

	"wayfare/internal/trip"
)

// FallbackHotels synthesizes five plausible hotels with a fixed pricing
// ladder so downstream filtering and ranking always have candidates.
func FallbackHotels(destination string) []trip.Hotel {
	hotels := make([]trip.Hotel, 0, 5)
	for i := 0; i < 5; i++ {
		hotels = append(hotels, trip.Hotel{
			Name:          fmt.Sprintf("Hotel %d in %s", i+1, destination),
			PricePerNight: 2000 + float64(i)*500,
			Rating:        4.0 + float64(i)*0.2,
			Description:   fmt.Sprintf("Comfortable accommodation in %s", destination),
			Location:      destination,
			Amenities:     []string{"WiFi", "Breakfast"},
		})
	}
	return hotels
}

// Per-person base prices for common domestic routes.
var routePrices = map[string]float64{
	"mumbai-goa":          4000,
	"mumbai-delhi":        5000,
	"bangalore-chennai":   3500,
	"bengaluru-chennai":   3500,
	"delhi-mumbai":        5000,
	"delhi-bangalore":     6000,
	"chennai-bangalore":   3500,
	"hyderabad-bangalore": 3000,
	"pune-bangalore":      4000,
}

var fallbackAirlines = []string{"IndiGo", "Air India", "SpiceJet", "Vistara", "Go First"}

// FallbackFlights synthesizes three flights priced off a route lookup table
// (default 5000 per person for unknown routes), scaled by passenger count.
func FallbackFlights(departureCity, destination string, passengers int) []trip.Flight {
	routeKey := strings.ToLower(departureCity) + "-" + strings.ToLower(destination)
	base, ok := routePrices[routeKey]
	if !ok {
		base = 5000
	}
	// Reverse-direction pricing is close enough when the forward route is
	// unknown.
	reverseKey := strings.ToLower(destination) + "-" + strings.ToLower(departureCity)
	if rev, revOK := routePrices[reverseKey]; revOK {
		base = rev
	}

	flights := make([]trip.Flight, 0, 3)
	for i := 0; i < 3; i++ {
		perPerson := base + float64(i)*1000
		stops := "Non-stop"
		if i > 0 {
			stops = fmt.Sprintf("%d stop(s)", i)
		}
		flights = append(flights, trip.Flight{
			Airline:          fallbackAirlines[i%len(fallbackAirlines)],
			PriceTotal:       perPerson * float64(passengers),
			PricePerPerson:   perPerson,
			Duration:         fmt.Sprintf("%dh 30m", 2+i),
			Stops:            stops,
			DepartureAirport: departureCity,
			ArrivalAirport:   destination,
			Passengers:       passengers,
		})
	}
	return flights
}

var airportCodes = map[string]string{
	"mumbai":             "BOM",
	"delhi":              "DEL",
	"bangalore":          "BLR",
	"bengaluru":          "BLR",
	"chennai":            "MAA",
	"kolkata":            "CCU",
	"hyderabad":          "HYD",
	"pune":               "PNQ",
	"ahmedabad":          "AMD",
	"jaipur":             "JAI",
	"goa":                "GOI",
	"kochi":              "COK",
	"cochin":             "COK",
	"thiruvananthapuram": "TRV",
	"trivandrum":         "TRV",
	"lucknow":            "LKO",
	"chandigarh":         "IXC",
	"indore":             "IDR",
	"coimbatore":         "CJB",
	"nagpur":             "NAG",
	"srinagar":           "SXR",
	"amritsar":           "ATQ",
	"varanasi":           "VNS",
	"bhubaneswar":        "BBI",
	"patna":              "PAT",
	"raipur":             "RPR",
	"ranchi":             "IXR",
	"bhopal":             "BHO",
	"udaipur":            "UDR",
	"guwahati":           "GAU",
	"visakhapatnam":      "VTZ",
	"vizag":              "VTZ",
	"mangalore":          "IXE",
	"madurai":            "IXM",
	"manali":             "KUU",
	"leh":                "IXL",
	"port blair":         "IXZ",
	"agra":               "AGR",
}

// AirportCode maps a city name to its IATA code, falling back to the first
// three letters uppercased for unknown cities.
func AirportCode(city string) string {
	c := strings.ToLower(strings.TrimSpace(city))
	if code, ok := airportCodes[c]; ok {
		return code
	}
	up := strings.ToUpper(c)
	if len(up) > 3 {
		up = up[:3]
	}
	return up
}
