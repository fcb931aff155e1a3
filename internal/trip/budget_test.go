// README: Tests for budget tier price bands.
package trip

import "testing"

func TestBandContainsInclusive(t *testing.T) {
	b := Band{Min: 1500, Max: 4000}
	tests := []struct {
		v    float64
		want bool
	}{
		{1499.99, false},
		{1500, true},
		{2750, true},
		{4000, true},
		{4000.01, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestTierBands(t *testing.T) {
	tests := []struct {
		tier        BudgetTier
		hotelBand   Band
		flightsBand Band
	}{
		{TierBackpacker, Band{500, 1500}, Band{3000, 8000}},
		{TierBudget, Band{1500, 4000}, Band{8000, 15000}},
		{TierMidRange, Band{4000, 10000}, Band{15000, 35000}},
		{TierLuxury, Band{10000, 50000}, Band{35000, 150000}},
		{TierFamily, Band{3000, 12000}, Band{10000, 40000}},
		// Unknown tiers fall back to Mid-Range.
		{BudgetTier("Extravagant"), Band{4000, 10000}, Band{15000, 35000}},
	}
	for _, tt := range tests {
		if got := tt.tier.HotelBand(); got != tt.hotelBand {
			t.Errorf("%s HotelBand() = %+v, want %+v", tt.tier, got, tt.hotelBand)
		}
		if got := tt.tier.FlightBand(); got != tt.flightsBand {
			t.Errorf("%s FlightBand() = %+v, want %+v", tt.tier, got, tt.flightsBand)
		}
	}
}
