// Package handler provides HTTP handlers for dashboard endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/dashboard/service"
	"github.com/RootViper4/admin-portabitity/internal/middleware"
)

// Handler handles HTTP requests for dashboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new dashboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetDashboard handles GET /dashboard.
// @Summary Categorized request buckets for the authenticated identity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetDashboard(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	resp, err := h.service.GetDashboard(c.Request.Context(), identity)
	if err != nil {
		h.logger.Errorw("error deriving dashboard", "error", err)
		errorResponse(c, "SUBSCRIPTION_FAILURE", "failed to load portability requests", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
