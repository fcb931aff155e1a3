// README: Forecast sample and bundle records plus the provider contract.
package weather

import (
	"context"
	"time"
)

// Forecast is a single forecast sample, typically a 3-hour slot.
type Forecast struct {
	Timestamp   time.Time `json:"datetime"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    int       `json:"humidity"`
	Condition   string    `json:"weather"`
	Description string    `json:"description"`
	Clouds      int       `json:"clouds"`
	WindSpeed   float64   `json:"wind_speed"`
	Rain        float64   `json:"rain"`
	// POP is the probability of precipitation in percent (0-100).
	POP float64 `json:"pop"`
}

// Bundle is an ordered forecast sequence for one location. Produced once
// by the provider and read-only afterwards.
type Bundle struct {
	City           string     `json:"city"`
	Country        string     `json:"country"`
	TimezoneOffset int        `json:"timezone"`
	Forecasts      []Forecast `json:"forecasts"`
}

func (b Bundle) Empty() bool { return len(b.Forecasts) == 0 }

// AvgTemp averages the sample temperatures; zero on an empty bundle.
func (b Bundle) AvgTemp() float64 {
	if len(b.Forecasts) == 0 {
		return 0
	}
	var sum float64
	for _, f := range b.Forecasts {
		sum += f.Temp
	}
	return sum / float64(len(b.Forecasts))
}

// Provider fetches a forecast window for a destination. Implementations
// should return whatever near-term data they have when the requested window
// is outside the available horizon, rather than erroring.
type Provider interface {
	Forecast(ctx context.Context, destination string, start, end time.Time) (Bundle, error)
}
