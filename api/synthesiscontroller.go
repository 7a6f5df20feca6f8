package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"newslens/orchestrator"
)

const defaultRunTimeout = 2 * time.Minute

// SynthesizeRequest is the JSON body for POST /api/synthesize. All option
// fields are optional; zero values take pipeline defaults.
type SynthesizeRequest struct {
	Topic          string               `json:"topic"`
	Options        orchestrator.Options `json:"options"`
	TimeoutSeconds int                  `json:"timeout_seconds"`
}

// RegisterSynthesisRoutes registers the pipeline endpoints.
func RegisterSynthesisRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	g := r.Group("/api")
	g.POST("/synthesize", handleSynthesize(orch))
}

// handleSynthesize runs one pipeline synchronously and returns the
// PipelineResult. Only a fetch-level failure maps to an error status.
func handleSynthesize(orch *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SynthesizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		if strings.TrimSpace(req.Topic) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
			return
		}

		timeout := defaultRunTimeout
		if req.TimeoutSeconds > 0 {
			timeout = time.Duration(req.TimeoutSeconds) * time.Second
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		result, err := orch.Run(ctx, req.Topic, req.Options)
		if err != nil {
			var fetchErr *orchestrator.FetchError
			if errors.As(err, &fetchErr) {
				c.JSON(http.StatusBadGateway, gin.H{"error": fetchErr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
