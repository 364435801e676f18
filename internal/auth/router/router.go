// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/auth/handler"
	"github.com/RootViper4/admin-portabitity/internal/auth/service"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/auth/login", h.Login)
	r.POST("/auth/anonymous", h.Anonymous)
	r.POST("/auth/logout", h.Logout)
}
