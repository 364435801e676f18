// Package router provides analytics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/analytics/handler"
	"github.com/RootViper4/admin-portabitity/internal/analytics/service"
)

// RegisterRoutes registers analytics module routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/analytics", h.GetAnalytics)
}
