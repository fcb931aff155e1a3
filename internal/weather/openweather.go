// README: OpenWeatherMap 5-day/3-hour forecast client.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfare/internal/cache"
)

const defaultForecastURL = "http://api.openweathermap.org/data/2.5/forecast"

// OpenWeather implements Provider against the OpenWeatherMap forecast API.
type OpenWeather struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	cache   cache.Cache
}

// NewOpenWeather creates a forecast client. Responses may be cached; pass
// cache.Nop{} (or nil) to disable caching.
func NewOpenWeather(apiKey string, timeout time.Duration, c cache.Cache) *OpenWeather {
	if c == nil {
		c = cache.Nop{}
	}
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: defaultForecastURL,
		httpc:   &http.Client{Timeout: timeout},
		cache:   c,
	}
}

// owmItem is one 3-hour slot in the forecast payload.
type owmItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
	Pop float64 `json:"pop"`
}

// owmResponse mirrors the subset of the forecast payload we consume.
type owmResponse struct {
	List []owmItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Forecast fetches the forecast and narrows it to the trip window. When the
// window lies outside the provider horizon it falls back to the first three
// days of whatever the API returned instead of erroring.
func (w *OpenWeather) Forecast(ctx context.Context, destination string, start, end time.Time) (Bundle, error) {
	key := fmt.Sprintf("wx:%s:%s:%s", destination, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if cached, ok := w.cache.Get(ctx, key); ok {
		var b Bundle
		if err := json.Unmarshal([]byte(cached), &b); err == nil {
			return b, nil
		}
	}

	q := url.Values{}
	q.Set("q", destination)
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")
	q.Set("cnt", "40")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Bundle{}, err
	}
	resp, err := w.httpc.Do(req)
	if err != nil {
		return Bundle{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Bundle{}, fmt.Errorf("weather request failed: status %d", resp.StatusCode)
	}

	var raw owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Bundle{}, fmt.Errorf("weather decode failed: %w", err)
	}
	if len(raw.List) == 0 {
		return Bundle{}, fmt.Errorf("no forecast data available")
	}

	bundle := Bundle{
		City:           raw.City.Name,
		Country:        raw.City.Country,
		TimezoneOffset: raw.City.Timezone,
	}

	// Include the end day fully.
	windowEnd := end.AddDate(0, 0, 1)
	for _, item := range raw.List {
		ts := time.Unix(item.Dt, 0).UTC()
		if ts.Before(start) || ts.After(windowEnd) {
			continue
		}
		bundle.Forecasts = append(bundle.Forecasts, item.sample())
	}

	// Window outside the horizon: use the near-term data we do have.
	if len(bundle.Forecasts) == 0 {
		limit := len(raw.List)
		if limit > 24 {
			limit = 24
		}
		for _, item := range raw.List[:limit] {
			bundle.Forecasts = append(bundle.Forecasts, item.sample())
		}
	}

	if data, err := json.Marshal(bundle); err == nil {
		w.cache.Set(ctx, key, string(data), 30*time.Minute)
	}
	return bundle, nil
}

func (item owmItem) sample() Forecast {
	f := Forecast{
		Timestamp: time.Unix(item.Dt, 0).UTC(),
		Temp:      item.Main.Temp,
		FeelsLike: item.Main.FeelsLike,
		TempMin:   item.Main.TempMin,
		TempMax:   item.Main.TempMax,
		Humidity:  item.Main.Humidity,
		Clouds:    item.Clouds.All,
		WindSpeed: item.Wind.Speed,
		Rain:      item.Rain.ThreeHours,
		POP:       item.Pop * 100,
	}
	if len(item.Weather) > 0 {
		f.Condition = item.Weather[0].Main
		f.Description = item.Weather[0].Description
	}
	return f
}
