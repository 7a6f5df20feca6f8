package api

import (
	"github.com/gin-gonic/gin"

	"newslens/orchestrator"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(orch *orchestrator.Orchestrator) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterSynthesisRoutes(r, orch)
	RegisterHealthRoutes(r, orch)
	return r
}
