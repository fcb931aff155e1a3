// README: Weather favorability scoring (pure, total, 0-100).
package weather

// NeutralScore is returned for an empty bundle: no data is treated as
// "no objection", so planning can proceed.
const NeutralScore = 50.0

// ScoreConfig holds the tunable scoring thresholds.
type ScoreConfig struct {
	// FavorableThreshold is the minimum score considered favorable.
	FavorableThreshold float64
	// ComfortMin/ComfortMax bound the comfortable temperature band in °C.
	ComfortMin float64
	ComfortMax float64
	// RainThreshold is the precipitation probability (%) above which the
	// heavy rain penalty applies.
	RainThreshold float64
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		FavorableThreshold: 65,
		ComfortMin:         15,
		ComfortMax:         35,
		RainThreshold:      60,
	}
}

// Score computes the favorability of a forecast bundle for a holiday type.
// Each sample starts at 100, loses penalties, is floored at 0, and the
// samples are averaged. Never fails; an empty bundle scores NeutralScore.
func Score(b Bundle, holidayType string, cfg ScoreConfig) float64 {
	if b.Empty() {
		return NeutralScore
	}

	var sum float64
	for _, f := range b.Forecasts {
		sum += sampleScore(f, holidayType, cfg)
	}
	return sum / float64(len(b.Forecasts))
}

// Favorable reports whether a score clears the configured threshold. This
// flag is the sole predicate for the workflow's conditional branch.
func (cfg ScoreConfig) Favorable(score float64) bool {
	return score >= cfg.FavorableThreshold
}

func sampleScore(f Forecast, holidayType string, cfg ScoreConfig) float64 {
	score := 100.0

	// Skiing inverts the temperature preference: cold is good.
	if holidayType == "Skiing" {
		switch {
		case f.Temp < 0:
			// no penalty
		case f.Temp < 10:
			score -= 10
		default:
			score -= 30
		}
	} else {
		switch {
		case f.Temp < cfg.ComfortMin:
			score -= (cfg.ComfortMin - f.Temp) * 2
		case f.Temp > cfg.ComfortMax:
			score -= (f.Temp - cfg.ComfortMax) * 1.5
		}
	}

	if f.POP > cfg.RainThreshold {
		score -= 30
	} else if f.POP > 40 {
		score -= 15
	}

	switch f.Condition {
	case "Thunderstorm", "Snow", "Extreme":
		if holidayType != "Skiing" {
			score -= 25
		}
	}

	if f.WindSpeed > 15 {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}
