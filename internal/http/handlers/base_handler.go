// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/planner"
	"wayfare/internal/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrUnknownNode),
		errors.Is(err, planner.ErrChoiceOutside),
		errors.Is(err, trip.ErrMissingDestination),
		errors.Is(err, trip.ErrMissingDeparture),
		errors.Is(err, trip.ErrInvalidDateRange):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
