// README: Weather-related nodes: fetch, analyze/score, alternate suggestions.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/trip"
	"wayfare/internal/weather"
)

// fetchWeatherNode calls the weather provider for the trip window.
// Reads: Preferences. Writes: Weather.
type fetchWeatherNode struct {
	deps Deps
}

func (n fetchWeatherNode) Name() string { return NodeFetchWeather }

func (n fetchWeatherNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	bundle, err := n.deps.Weather.Forecast(cctx, prefs.Destination, prefs.StartDate, prefs.EndDate)
	if err != nil {
		return trip.Update{
			Weather: &weather.Bundle{},
			Errors:  []string{fmt.Sprintf("Weather API error: %v", err)},
			Logs:    []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}

	return trip.Update{
		Weather: &bundle,
		Logs:    []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// analyzeWeatherNode scores the forecast and derives the favorability flag.
// Reads: Weather, Preferences. Writes: WeatherScore, WeatherFavorable,
// WeatherAnalysis, WeatherSummary.
type analyzeWeatherNode struct {
	deps Deps
}

func (n analyzeWeatherNode) Name() string { return NodeAnalyzeWeather }

func (n analyzeWeatherNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	holiday := string(st.Preferences.HolidayType)

	// No forecast: proceed on a neutral score so the plan still happens.
	if st.Weather.Empty() {
		return trip.Update{
			WeatherAnalysis:  ptr("Weather data unavailable"),
			WeatherScore:     ptr(weather.NeutralScore),
			WeatherFavorable: ptr(true),
			WeatherSummary:   ptr("Unable to fetch weather, proceeding with planning"),
		}
	}

	score := weather.Score(st.Weather, holiday, n.deps.Score)

	analysis := n.narrative(ctx, st, holiday, score)
	favorable := n.deps.Score.Favorable(score)
	summary := fmt.Sprintf("Score: %.0f/100 | Avg Temp: %.1f°C", score, st.Weather.AvgTemp())

	return trip.Update{
		WeatherAnalysis:  &analysis,
		WeatherScore:     &score,
		WeatherFavorable: &favorable,
		WeatherSummary:   &summary,
		Logs:             []trip.LogEntry{successLog(n.Name(), start)},
	}
}

// narrative asks the generator for a short forecast write-up; generation
// failure must never block the favorability decision, so it falls back to a
// templated one-liner.
func (n analyzeWeatherNode) narrative(ctx context.Context, st *trip.State, holiday string, score float64) string {
	samples := st.Weather.Forecasts
	if len(samples) > 10 {
		samples = samples[:10]
	}
	data, _ := json.MarshalIndent(samples, "", "  ")

	prompt := fmt.Sprintf(`Analyze this weather forecast for a %s trip to %s:

Weather Data:
%s

Provide:
1. A brief weather summary (2-3 sentences)
2. Key concerns or highlights
3. Recommendations for travelers

Weather Score: %.1f/100

Keep it concise and practical.`, holiday, st.Weather.City, data, score)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	analysis, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil || analysis == "" {
		return fmt.Sprintf("Weather score: %.1f/100. Check detailed forecast.", score)
	}
	return analysis
}

// suggestAlternatesNode asks for three replacement destinations when the
// weather is unfavorable. Advisory only: it never changes the destination
// the rest of the pipeline searches.
// Reads: Preferences, WeatherScore. Writes: Alternates.
type suggestAlternatesNode struct {
	deps Deps
}

func (n suggestAlternatesNode) Name() string { return NodeSuggestAlternates }

func (n suggestAlternatesNode) Apply(ctx context.Context, st *trip.State) trip.Update {
	start := time.Now()
	prefs := st.Preferences

	prompt := fmt.Sprintf(`The weather forecast for %s is unfavorable (score: %.1f/100).

Suggest 3 alternate destinations in India that:
1. Are similar in vibe to %s
2. Are suitable for a %s holiday
3. Typically have better weather during the same period
4. Are within reasonable travel distance

Return ONLY a JSON array like this:
[
    {"name": "Destination1", "reason": "Why it's better", "distance": "~500 km"},
    {"name": "Destination2", "reason": "Why it's better", "distance": "~300 km"},
    {"name": "Destination3", "reason": "Why it's better", "distance": "~400 km"}
]`, prefs.Destination, st.WeatherScore, prefs.Destination, prefs.HolidayType)

	cctx, cancel := n.deps.callCtx(ctx)
	defer cancel()

	result, err := n.deps.Gen.Generate(cctx, prompt)
	if err != nil {
		return trip.Update{
			Alternates: &[]trip.Alternate{},
			Warnings:   []string{fmt.Sprintf("Could not suggest alternates: %v", err)},
			Logs:       []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}

	var alternates []trip.Alternate
	if err := ai.UnmarshalArray(result, &alternates); err != nil {
		// Non-critical path: a warning, not an error.
		return trip.Update{
			Alternates: &[]trip.Alternate{},
			Warnings:   []string{fmt.Sprintf("Could not suggest alternates: %v", err)},
			Logs:       []trip.LogEntry{failureLog(n.Name(), start)},
		}
	}

	return trip.Update{
		Alternates: &alternates,
		Logs:       []trip.LogEntry{successLog(n.Name(), start)},
	}
}
