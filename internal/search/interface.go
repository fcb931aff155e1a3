// README: Search provider contracts for hotels, flights and travel links.
package search

import (
	"context"
	"errors"
	"time"

	"wayfare/internal/trip"
)

// ErrDisabled marks a provider configured without credentials.
var ErrDisabled = errors.New("search: provider disabled, no API key configured")

// HotelProvider finds hotel offers for a destination and stay window.
// A nil or empty result is acceptable; callers fall back to synthesis.
type HotelProvider interface {
	SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time, partySize string) ([]trip.Hotel, error)
}

// FlightProvider finds round-trip flight offers for the whole party.
type FlightProvider interface {
	SearchFlights(ctx context.Context, departureCity, destination string, outbound, inbound time.Time, partySize string) ([]trip.Flight, error)
}

// LinkProvider finds travel-guide links for a topic.
type LinkProvider interface {
	SearchLinks(ctx context.Context, topic string) ([]trip.Link, error)
}

// Disabled stands in for any provider without credentials. Every search
// reports ErrDisabled so callers take their fallback path.
type Disabled struct{}

func (Disabled) SearchHotels(context.Context, string, time.Time, time.Time, string) ([]trip.Hotel, error) {
	return nil, ErrDisabled
}

func (Disabled) SearchFlights(context.Context, string, string, time.Time, time.Time, string) ([]trip.Flight, error) {
	return nil, ErrDisabled
}

func (Disabled) SearchLinks(context.Context, string) ([]trip.Link, error) {
	return nil, ErrDisabled
}
