package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavyk10/guided-component-architect/internal/pipeline"
	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipe *pipeline.Pipeline
	set  tokens.Set
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(pipe *pipeline.Pipeline, set tokens.Set) *APIHandler {
	return &APIHandler{pipe: pipe, set: set}
}

// GenerateRequest is the body of POST /component/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// POST /component/generate
func (h *APIHandler) GenerateComponent(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.pipe.Run(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyDescription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Component description is empty after sanitization"})
			return
		}
		log.Printf("Error generating component: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Component generation failed"})
		return
	}

	// Terminal validation failure is still a well-formed result; the body
	// carries valid=false plus the full error list and attempt log.
	c.JSON(http.StatusOK, result)
}

// GET /tokens
func (h *APIHandler) GetDesignTokens(c *gin.Context) {
	c.JSON(http.StatusOK, h.set.Map())
}
