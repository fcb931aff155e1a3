// README: Integration tests for the trip API surface.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/handlers"
	"wayfare/internal/planner"
	"wayfare/internal/search"
	"wayfare/internal/trip"
	"wayfare/internal/weather"
)

// stubWeather is a test double for weather.Provider.
type stubWeather struct{}

func (stubWeather) Forecast(context.Context, string, time.Time, time.Time) (weather.Bundle, error) {
	return weather.Bundle{
		City:      "Goa",
		Forecasts: []weather.Forecast{{Temp: 28, Condition: "Clear"}},
	}, nil
}

// stubGen is a test double for ai.Generator.
type stubGen struct{}

func (stubGen) Generate(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "day-wise travel itinerary") {
		return "Day 0: Arrive.", nil
	}
	return "ok", nil
}

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	p := planner.New(planner.Deps{
		Weather: stubWeather{},
		Hotels:  search.Disabled{},
		Flights: search.Disabled{},
		Links:   search.Disabled{},
		Gen:     stubGen{},
		Score:   weather.DefaultScoreConfig(),
	})
	sessions := planner.NewSessions()

	r := gin.New()
	h := handlers.NewTripHandler(p, sessions)
	r.POST("/api/trips", h.Create)
	r.GET("/api/trips/:id", h.Get)
	r.DELETE("/api/trips/:id", h.Delete)
	r.POST("/api/trips/:id/nodes/:node", h.InvokeNode)
	r.POST("/api/trips/:id/replan-hotels", h.ReplanHotels)
	r.POST("/api/trips/:id/choose", h.Choose)
	r.POST("/api/trips/:id/chat", h.Chat)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTripBody() map[string]any {
	return map[string]any{
		"destination":    "Goa",
		"departure_city": "Mumbai",
		"start_date":     "2026-03-01",
		"end_date":       "2026-03-05",
		"party_size":     "2",
		"holiday_type":   "Beach",
		"budget_tier":    "Budget",
	}
}

type tripResponse struct {
	TripID string `json:"trip_id"`
	State  struct {
		Status          string       `json:"workflow_status"`
		Itinerary       string       `json:"itinerary"`
		SelectedHotels  []trip.Hotel `json:"selected_hotels"`
		ChosenHotel     trip.Hotel   `json:"chosen_hotel"`
		ChosenFlight    trip.Flight  `json:"chosen_flight"`
		TotalCost       float64      `json:"total_cost"`
		SelectedFlights []any        `json:"selected_flights"`
	} `json:"state"`
}

func createTrip(t *testing.T, r *gin.Engine) tripResponse {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/trips", createTripBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var resp tripResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestCreateTrip(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	if resp.TripID == "" {
		t.Fatal("empty trip_id")
	}
	if resp.State.Status != "completed" {
		t.Errorf("status = %q, want completed", resp.State.Status)
	}
	if resp.State.Itinerary != "Day 0: Arrive." {
		t.Errorf("itinerary = %q", resp.State.Itinerary)
	}
	if len(resp.State.SelectedHotels) == 0 {
		t.Error("no selected hotels in response")
	}
}

func TestCreateTripBadInput(t *testing.T) {
	r := buildTestRouter()
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"bad start date", func(b map[string]any) { b["start_date"] = "03/01/2026" }},
		{"bad end date", func(b map[string]any) { b["end_date"] = "soon" }},
		{"missing destination", func(b map[string]any) { b["destination"] = "" }},
		{"end before start", func(b map[string]any) { b["end_date"] = "2026-02-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := createTripBody()
			tt.mutate(body)
			if w := doRequest(r, http.MethodPost, "/api/trips", body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGetTrip(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	w := doRequest(r, http.MethodGet, "/api/trips/"+resp.TripID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	if w := doRequest(r, http.MethodGet, "/api/trips/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", w.Code)
	}
}

func TestChooseHotel(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/choose", map[string]any{
		"kind":  "hotel",
		"index": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("choose status = %d, body %s", w.Code, w.Body.String())
	}
	var choice struct {
		ChosenHotel trip.Hotel `json:"chosen_hotel"`
		TotalCost   float64    `json:"total_cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &choice); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if choice.ChosenHotel.Name != resp.State.SelectedHotels[1].Name {
		t.Errorf("chosen hotel = %q, want %q", choice.ChosenHotel.Name, resp.State.SelectedHotels[1].Name)
	}
	// 5 trip days in the fixture.
	want := choice.ChosenHotel.PricePerNight*5 + resp.State.ChosenFlight.PriceTotal
	if choice.TotalCost != want {
		t.Errorf("total = %v, want %v", choice.TotalCost, want)
	}

	w = doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/choose", map[string]any{
		"kind":  "hotel",
		"index": 99,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range status = %d, want 400", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/choose", map[string]any{
		"kind":  "villa",
		"index": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad kind status = %d, want 400", w.Code)
	}
}

func TestInvokeNode(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/nodes/packing_list", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("invoke status = %d", w.Code)
	}

	if w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/nodes/teleport", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown node status = %d, want 400", w.Code)
	}
}

func TestReplanHotels(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/replan-hotels", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("replan status = %d", w.Code)
	}
	var replanned tripResponse
	if err := json.Unmarshal(w.Body.Bytes(), &replanned); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if replanned.State.Status != "completed" {
		t.Errorf("status after replan = %q", replanned.State.Status)
	}
	if replanned.State.ChosenHotel.Name == "" {
		t.Error("no chosen hotel after replan")
	}
}

func TestChat(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/chat", map[string]any{
		"question": "Is March a good time?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d", w.Code)
	}
	var chat struct {
		Response string           `json:"response"`
		History  []trip.ChatEntry `json:"chat_history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &chat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if chat.Response == "" || len(chat.History) != 1 {
		t.Errorf("response %q, history %d", chat.Response, len(chat.History))
	}
	if chat.History[0].Question != "Is March a good time?" {
		t.Errorf("history question = %q", chat.History[0].Question)
	}

	if w := doRequest(r, http.MethodPost, "/api/trips/"+resp.TripID+"/chat", map[string]any{"question": "  "}); w.Code != http.StatusBadRequest {
		t.Errorf("empty question status = %d, want 400", w.Code)
	}
}

func TestDeleteTrip(t *testing.T) {
	r := buildTestRouter()
	resp := createTrip(t, r)

	if w := doRequest(r, http.MethodDelete, "/api/trips/"+resp.TripID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/trips/"+resp.TripID, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
}
