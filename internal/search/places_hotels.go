// README: Hotel search built on Google Places text search.
package search

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"wayfare/internal/trip"
)

// PlacesHotels handles hotel lookups through the Google Places API.
type PlacesHotels struct {
	client *maps.Client
}

// NewPlacesHotels creates a hotel search service with the given API key.
func NewPlacesHotels(apiKey string) (*PlacesHotels, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesHotels{client: client}, nil
}

// priceForLevel estimates a nightly INR rate from the Places price level
// (0-4). Places carries no absolute prices, so the ladder keeps offers
// comparable and deterministic for the budget filter.
func priceForLevel(level int) float64 {
	switch level {
	case 0:
		return 1200
	case 1:
		return 2000
	case 2:
		return 3500
	case 3:
		return 7000
	case 4:
		return 15000
	default:
		return 3000
	}
}

// SearchHotels queries Places for hotels in the destination and maps the
// results to offers. The stay window and party size do not narrow a text
// search; they are part of the contract so other providers can use them.
func (s *PlacesHotels) SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time, partySize string) ([]trip.Hotel, error) {
	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("hotels in %s", destination),
		Type:  "lodging",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var hotels []trip.Hotel
	for _, result := range resp.Results {
		hotels = append(hotels, trip.Hotel{
			Name:          result.Name,
			PricePerNight: priceForLevel(result.PriceLevel),
			Rating:        float64(result.Rating),
			Link:          fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", result.PlaceID),
			Description:   result.FormattedAddress,
			Location:      destination,
		})
		if len(hotels) >= 15 {
			break
		}
	}

	return hotels, nil
}
