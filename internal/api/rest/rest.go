package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Ingestion trigger, runs the stage synchronously
		v1.GET("/ingest", handler.TriggerIngestion)

		// Ingestion run log
		v1.GET("/ingest/runs", handler.ListIngestionRuns)

		// Car catalog endpoints (public read access)
		v1.GET("/cars", handler.ListCars)
		v1.GET("/cars/:id", handler.GetCar)
	}
}
