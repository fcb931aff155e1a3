// README: Tests for the favorability scoring algorithm.
package weather

import "testing"

func TestScoreEmptyBundleIsNeutral(t *testing.T) {
	got := Score(Bundle{}, "Beach", DefaultScoreConfig())
	if got != NeutralScore {
		t.Errorf("Score(empty) = %v, want %v", got, NeutralScore)
	}
}

func TestSampleScore(t *testing.T) {
	cfg := DefaultScoreConfig()
	tests := []struct {
		name    string
		f       Forecast
		holiday string
		want    float64
	}{
		{"perfect", Forecast{Temp: 25, Condition: "Clear"}, "Beach", 100},
		{"cold penalty scales", Forecast{Temp: 10, Condition: "Clear"}, "Beach", 90},
		{"hot penalty scales", Forecast{Temp: 40, Condition: "Clear"}, "Beach", 92.5},
		{"moderate rain chance", Forecast{Temp: 25, POP: 50, Condition: "Clouds"}, "Beach", 85},
		{"heavy rain chance", Forecast{Temp: 25, POP: 70, Condition: "Rain"}, "Beach", 70},
		{"thunderstorm", Forecast{Temp: 25, Condition: "Thunderstorm"}, "Beach", 75},
		{"strong wind", Forecast{Temp: 25, WindSpeed: 20, Condition: "Clear"}, "Beach", 90},
		{"skiing loves cold", Forecast{Temp: -5, Condition: "Snow"}, "Skiing", 100},
		{"skiing mild", Forecast{Temp: 5, Condition: "Clear"}, "Skiing", 90},
		{"skiing warm", Forecast{Temp: 25, Condition: "Clear"}, "Skiing", 70},
		{"snow fine for skiing", Forecast{Temp: -2, Condition: "Snow"}, "Skiing", 100},
		{"snow bad for beach", Forecast{Temp: 20, Condition: "Snow"}, "Beach", 75},
		{"floored at zero", Forecast{Temp: 100, POP: 100, WindSpeed: 20, Condition: "Thunderstorm"}, "Beach", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sampleScore(tt.f, tt.holiday, cfg); got != tt.want {
				t.Errorf("sampleScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreAverages(t *testing.T) {
	b := Bundle{Forecasts: []Forecast{
		{Temp: 25, Condition: "Clear"},     // 100
		{Temp: 10, Condition: "Clear"},     // 90
		{Temp: 25, POP: 50, WindSpeed: 20}, // 75
	}}
	want := (100.0 + 90.0 + 75.0) / 3
	if got := Score(b, "Beach", DefaultScoreConfig()); got != want {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestFavorable(t *testing.T) {
	cfg := DefaultScoreConfig()
	if !cfg.Favorable(65) {
		t.Error("threshold score should be favorable")
	}
	if cfg.Favorable(64.9) {
		t.Error("below-threshold score should not be favorable")
	}
}

func TestAvgTemp(t *testing.T) {
	if got := (Bundle{}).AvgTemp(); got != 0 {
		t.Errorf("AvgTemp(empty) = %v", got)
	}
	b := Bundle{Forecasts: []Forecast{{Temp: 20}, {Temp: 30}}}
	if got := b.AvgTemp(); got != 25 {
		t.Errorf("AvgTemp = %v, want 25", got)
	}
}
