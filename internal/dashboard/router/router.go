// Package router provides dashboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/dashboard/handler"
	"github.com/RootViper4/admin-portabitity/internal/dashboard/service"
)

// RegisterRoutes registers dashboard module routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/dashboard", h.GetDashboard)
}
