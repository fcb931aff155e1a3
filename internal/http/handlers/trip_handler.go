// README: Trip handlers: session lifecycle, patches, choices, chat.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/planner"
	"wayfare/internal/trip"
)

type TripHandler struct {
	planner  *planner.Planner
	sessions *planner.Sessions
}

func NewTripHandler(p *planner.Planner, s *planner.Sessions) *TripHandler {
	return &TripHandler{planner: p, sessions: s}
}

const dateLayout = "2006-01-02"

type createTripReq struct {
	Destination   string `json:"destination"`
	DepartureCity string `json:"departure_city"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PartySize     string `json:"party_size"`
	HolidayType   string `json:"holiday_type"`
	BudgetTier    string `json:"budget_tier"`
	Comments      string `json:"comments"`
}

// Create handles POST /api/trips: it registers a session and runs the full
// planning workflow before responding with the resulting state.
func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid start_date, want YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		return
	}

	prefs := trip.Preferences{
		Destination:   strings.TrimSpace(req.Destination),
		DepartureCity: strings.TrimSpace(req.DepartureCity),
		StartDate:     start,
		EndDate:       end,
		PartySize:     req.PartySize,
		HolidayType:   trip.HolidayType(req.HolidayType),
		BudgetTier:    trip.BudgetTier(req.BudgetTier),
		Comments:      req.Comments,
	}
	if err := prefs.Validate(); err != nil {
		writeTripError(c, err)
		return
	}

	sess := h.sessions.Create(prefs)
	sess.Lock()
	defer sess.Unlock()

	if err := h.planner.Run(c.Request.Context(), sess.State); err != nil {
		h.sessions.Delete(sess.ID)
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, gin.H{"trip_id": sess.ID, "state": sess.State})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	sess.Lock()
	defer sess.Unlock()
	writeJSON(c, http.StatusOK, gin.H{"trip_id": sess.ID, "state": sess.State})
}

// InvokeNode handles POST /api/trips/:id/nodes/:node, the patch path: one
// named node re-runs against the current state.
func (h *TripHandler) InvokeNode(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := h.planner.Invoke(c.Request.Context(), c.Param("node"), sess.State); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trip_id": sess.ID, "state": sess.State})
}

// ReplanHotels handles POST /api/trips/:id/replan-hotels: it redoes the
// hotel search and everything downstream of it.
func (h *TripHandler) ReplanHotels(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := h.planner.ReplanHotels(c.Request.Context(), sess.State); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trip_id": sess.ID, "state": sess.State})
}

type chooseReq struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// Choose handles POST /api/trips/:id/choose: it promotes one of the
// selected offers and recomputes the total cost.
func (h *TripHandler) Choose(c *gin.Context) {
	var req chooseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	sess.Lock()
	defer sess.Unlock()

	switch req.Kind {
	case "hotel":
		err = h.planner.ChooseHotel(sess.State, req.Index)
	case "flight":
		err = h.planner.ChooseFlight(sess.State, req.Index)
	default:
		writeError(c, http.StatusBadRequest, "kind must be hotel or flight")
		return
	}
	if err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"trip_id":       sess.ID,
		"chosen_hotel":  sess.State.ChosenHotel,
		"chosen_flight": sess.State.ChosenFlight,
		"total_cost":    sess.State.TotalCost,
	})
}

type chatReq struct {
	Question string `json:"question"`
}

// Chat handles POST /api/trips/:id/chat: it runs the chat node with the
// posted question and returns the response plus the growing history.
func (h *TripHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(c, http.StatusBadRequest, "missing question")
		return
	}

	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	sess.Lock()
	defer sess.Unlock()

	// The question travels through the state so the chat node reads it the
	// same way it reads everything else.
	sess.State.UserQuestion = req.Question
	if err := h.planner.Invoke(c.Request.Context(), planner.NodeChat, sess.State); err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"trip_id":      sess.ID,
		"response":     sess.State.ChatResponse,
		"chat_history": sess.State.ChatHistory,
	})
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}
