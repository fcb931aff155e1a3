// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/handlers"
	"wayfare/internal/http/middleware"
	"wayfare/internal/planner"
)

func NewRouter(p *planner.Planner, sessions *planner.Sessions) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	trips := handlers.NewTripHandler(p, sessions)
	r.POST("/api/trips", trips.Create)
	r.GET("/api/trips/:id", trips.Get)
	r.DELETE("/api/trips/:id", trips.Delete)
	r.POST("/api/trips/:id/nodes/:node", trips.InvokeNode)
	r.POST("/api/trips/:id/replan-hotels", trips.ReplanHotels)
	r.POST("/api/trips/:id/choose", trips.Choose)
	r.POST("/api/trips/:id/chat", trips.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
