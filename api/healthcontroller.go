package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newslens/orchestrator"
)

// RegisterHealthRoutes registers liveness and status endpoints.
func RegisterHealthRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/api/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, orch.Status())
	})
}
