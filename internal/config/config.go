// README: Config loader with env defaults for HTTP, Redis, providers, and scoring.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ScoringConfig struct {
	FavorableThreshold float64
	ComfortMinC        float64
	ComfortMaxC        float64
	RainThresholdPct   float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey   string
		GeminiModel string
	}
	Providers struct {
		OpenWeatherKey string
		SerpAPIKey     string
		MapsKey        string
	}
	Scoring ScoringConfig
	Planner struct {
		CallTimeout time.Duration
	}
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFARE_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("WAYFARE_REDIS_ADDR", "localhost:6379")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault("WAYFARE_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Providers.OpenWeatherKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.Providers.SerpAPIKey = os.Getenv("SERPAPI_API_KEY")
	cfg.Providers.MapsKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Scoring.FavorableThreshold = envOrDefaultFloat("WAYFARE_WEATHER_THRESHOLD", 65)
	cfg.Scoring.ComfortMinC = envOrDefaultFloat("WAYFARE_COMFORT_MIN_C", 15)
	cfg.Scoring.ComfortMaxC = envOrDefaultFloat("WAYFARE_COMFORT_MAX_C", 35)
	cfg.Scoring.RainThresholdPct = envOrDefaultFloat("WAYFARE_RAIN_THRESHOLD_PCT", 60)
	cfg.Planner.CallTimeout = time.Duration(envOrDefaultInt("WAYFARE_CALL_TIMEOUT_SEC", 15)) * time.Second
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
