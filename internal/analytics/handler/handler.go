// Package handler provides HTTP handlers for analytics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/analytics/service"
	"github.com/RootViper4/admin-portabitity/internal/middleware"
)

// Handler handles HTTP requests for analytics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new analytics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetAnalytics handles GET /analytics.
// @Summary Per-year entry/exit analytics for the authenticated identity
// @Tags Analytics
// @Produce json
// @Success 200 {object} model.AnalyticsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analytics [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetAnalytics(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	resp, err := h.service.GetAnalytics(c.Request.Context(), identity)
	if err != nil {
		h.logger.Errorw("error deriving analytics", "error", err)
		errorResponse(c, "SUBSCRIPTION_FAILURE", "failed to load portability requests", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
