package health

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the health check endpoint.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/health", h.Check)
}
