package server

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMaxAge bounds how long browsers may cache preflight responses.
const corsMaxAge = 12 * time.Hour

// Router assembles the gin engine: request id, request logging, recovery,
// CORS, and the versioned API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(s.cfg.AllowedOrigins)))

	r.GET("/healthz", s.handleHealthz)

	api := r.Group("/api/v1")
	{
		api.POST("/estimate", s.handleEstimate)
		api.POST("/save", s.handleSave)
		api.GET("/dashboard", s.handleDashboard)
		api.GET("/history", s.handleHistory)
		api.GET("/recommendations", s.handleRecommendations)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderUserID, HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", HeaderRequestID},
		MaxAge:        corsMaxAge,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
