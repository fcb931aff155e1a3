// README: Budget tiers and their hotel/flight price bands.
package trip

type BudgetTier string

const (
	TierBackpacker BudgetTier = "Backpacker"
	TierBudget     BudgetTier = "Budget"
	TierMidRange   BudgetTier = "Mid-Range"
	TierLuxury     BudgetTier = "Luxury"
	TierFamily     BudgetTier = "Family"
)

// Band is a closed price range with inclusive bounds.
type Band struct {
	Min float64
	Max float64
}

func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

type budgetBands struct {
	HotelPerNight Band
	FlightTotal   Band
}

// Hotel bands are per night, flight bands are round-trip totals, both INR.
var budgetRanges = map[BudgetTier]budgetBands{
	TierBackpacker: {HotelPerNight: Band{500, 1500}, FlightTotal: Band{3000, 8000}},
	TierBudget:     {HotelPerNight: Band{1500, 4000}, FlightTotal: Band{8000, 15000}},
	TierMidRange:   {HotelPerNight: Band{4000, 10000}, FlightTotal: Band{15000, 35000}},
	TierLuxury:     {HotelPerNight: Band{10000, 50000}, FlightTotal: Band{35000, 150000}},
	TierFamily:     {HotelPerNight: Band{3000, 12000}, FlightTotal: Band{10000, 40000}},
}

func (t BudgetTier) bands() budgetBands {
	if b, ok := budgetRanges[t]; ok {
		return b
	}
	return budgetRanges[TierMidRange]
}

// HotelBand returns the per-night band for the tier, falling back to
// Mid-Range for unknown tiers.
func (t BudgetTier) HotelBand() Band { return t.bands().HotelPerNight }

// FlightBand returns the round-trip total band for the tier.
func (t BudgetTier) FlightBand() Band { return t.bands().FlightTotal }
