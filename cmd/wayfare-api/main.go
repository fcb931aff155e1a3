// README: Entry point; loads config, wires providers and planner, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/cache"
	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/infra"
	"wayfare/internal/planner"
	"wayfare/internal/search"
	"wayfare/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var responseCache cache.Cache = cache.Nop{}
	if cfg.Redis.Addr != "" {
		responseCache = cache.NewRedis(infra.NewRedis(cfg.Redis.Addr))
	}

	gen, err := ai.NewGeminiGenerator(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gen.Close()

	deps := planner.Deps{
		Weather: weather.NewOpenWeather(cfg.Providers.OpenWeatherKey, cfg.Planner.CallTimeout, responseCache),
		Hotels:  search.Disabled{},
		Flights: search.Disabled{},
		Links:   search.Disabled{},
		Gen:     gen,
		Score: weather.ScoreConfig{
			FavorableThreshold: cfg.Scoring.FavorableThreshold,
			ComfortMin:         cfg.Scoring.ComfortMinC,
			ComfortMax:         cfg.Scoring.ComfortMaxC,
			RainThreshold:      cfg.Scoring.RainThresholdPct,
		},
		CallTimeout: cfg.Planner.CallTimeout,
	}

	if cfg.Providers.MapsKey != "" {
		hotels, err := search.NewPlacesHotels(cfg.Providers.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		deps.Hotels = hotels
	} else {
		log.Print("GOOGLE_MAPS_API_KEY not set, hotel search uses fallback offers")
	}

	if cfg.Providers.SerpAPIKey != "" {
		serp := search.NewSerpAPI(cfg.Providers.SerpAPIKey, cfg.Planner.CallTimeout, responseCache)
		deps.Flights = serp
		deps.Links = serp
	} else {
		log.Print("SERPAPI_API_KEY not set, flight and link search use fallbacks")
	}

	p := planner.New(deps)
	sessions := planner.NewSessions()

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(p, sessions),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
