package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Component Lifecycle ---
	componentGroup := router.Group("/component")
	{
		componentGroup.POST("/generate", h.GenerateComponent) // Run the full pipeline for one description
	}

	// --- Design System ---
	router.GET("/tokens", h.GetDesignTokens) // Active design-token set, for UI display

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
