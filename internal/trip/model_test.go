// README: Tests for preference validation and domain value formatting.
package trip

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validPrefs() Preferences {
	return Preferences{
		Destination:   "Goa",
		DepartureCity: "Mumbai",
		StartDate:     date(2026, 3, 1),
		EndDate:       date(2026, 3, 5),
		PartySize:     "2",
		HolidayType:   HolidayBeach,
		BudgetTier:    TierBudget,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Preferences)
		wantErr error
	}{
		{"valid", func(p *Preferences) {}, nil},
		{"missing destination", func(p *Preferences) { p.Destination = "  " }, ErrMissingDestination},
		{"missing departure", func(p *Preferences) { p.DepartureCity = "" }, ErrMissingDeparture},
		{"end before start", func(p *Preferences) { p.EndDate = p.StartDate.AddDate(0, 0, -1) }, ErrInvalidDateRange},
		{"single day", func(p *Preferences) { p.EndDate = p.StartDate }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPrefs()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	p := validPrefs()
	if got := p.Duration(); got != 5 {
		t.Errorf("Duration() = %d, want 5", got)
	}
	p.EndDate = p.StartDate
	if got := p.Duration(); got != 1 {
		t.Errorf("Duration() single day = %d, want 1", got)
	}
}

func TestPassengers(t *testing.T) {
	tests := []struct {
		partySize string
		want      int
	}{
		{"1", 1},
		{"2", 2},
		{"3", 3},
		{"4-6", 5},
		{"7-10", 8},
		{"10+", 12},
		{"", 2},
		{"lots", 2},
	}
	for _, tt := range tests {
		p := Preferences{PartySize: tt.partySize}
		if got := p.Passengers(); got != tt.want {
			t.Errorf("Passengers(%q) = %d, want %d", tt.partySize, got, tt.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{2500, "₹2,500"},
		{2499.6, "₹2,500"},
		{1234567, "₹1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
