// README: Tests for deterministic fallback offers and airport codes.
package search

import "testing"

func TestFallbackHotels(t *testing.T) {
	hotels := FallbackHotels("Goa")
	if len(hotels) != 5 {
		t.Fatalf("got %d hotels, want 5", len(hotels))
	}
	for i, h := range hotels {
		wantPrice := 2000 + float64(i)*500
		if h.PricePerNight != wantPrice {
			t.Errorf("hotel %d price = %v, want %v", i, h.PricePerNight, wantPrice)
		}
		wantRating := 4.0 + float64(i)*0.2
		if h.Rating != wantRating {
			t.Errorf("hotel %d rating = %v, want %v", i, h.Rating, wantRating)
		}
		if h.Location != "Goa" {
			t.Errorf("hotel %d location = %q", i, h.Location)
		}
	}
}

func TestFallbackFlights(t *testing.T) {
	flights := FallbackFlights("Mumbai", "Goa", 2)
	if len(flights) != 3 {
		t.Fatalf("got %d flights, want 3", len(flights))
	}
	// mumbai-goa is a known route at 4000 per person.
	if flights[0].PricePerPerson != 4000 {
		t.Errorf("per person = %v, want 4000", flights[0].PricePerPerson)
	}
	if flights[0].PriceTotal != 8000 {
		t.Errorf("total = %v, want 8000", flights[0].PriceTotal)
	}
	if flights[0].Stops != "Non-stop" || flights[1].Stops != "1 stop(s)" {
		t.Errorf("stops = %q, %q", flights[0].Stops, flights[1].Stops)
	}
	if flights[1].PricePerPerson != 5000 || flights[2].PricePerPerson != 6000 {
		t.Errorf("ladder = %v, %v", flights[1].PricePerPerson, flights[2].PricePerPerson)
	}
	if flights[0].Passengers != 2 {
		t.Errorf("passengers = %d", flights[0].Passengers)
	}
}

func TestFallbackFlightsReverseRoute(t *testing.T) {
	// goa-mumbai is not in the table, but the reverse direction is.
	flights := FallbackFlights("Goa", "Mumbai", 1)
	if flights[0].PricePerPerson != 4000 {
		t.Errorf("per person = %v, want 4000 from reverse route", flights[0].PricePerPerson)
	}
}

func TestFallbackFlightsUnknownRoute(t *testing.T) {
	flights := FallbackFlights("Shillong", "Leh", 3)
	if flights[0].PricePerPerson != 5000 {
		t.Errorf("per person = %v, want default 5000", flights[0].PricePerPerson)
	}
	if flights[0].PriceTotal != 15000 {
		t.Errorf("total = %v, want 15000", flights[0].PriceTotal)
	}
}

func TestAirportCode(t *testing.T) {
	tests := []struct {
		city string
		want string
	}{
		{"Mumbai", "BOM"},
		{" goa ", "GOI"},
		{"Bengaluru", "BLR"},
		{"Port Blair", "IXZ"},
		{"Shimla", "SHI"},
		{"Ab", "AB"},
	}
	for _, tt := range tests {
		if got := AirportCode(tt.city); got != tt.want {
			t.Errorf("AirportCode(%q) = %q, want %q", tt.city, got, tt.want)
		}
	}
}
