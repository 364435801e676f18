// Package router provides portability request module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/request/handler"
	"github.com/RootViper4/admin-portabitity/internal/request/service"
)

// RegisterRoutes registers portability request module routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/requests", h.Snapshot)
	r.GET("/requests/scoped", h.ListByTargetAndStatus)
	r.POST("/requests/transition", h.Transition)
	r.GET("/requests/transition/state", h.TransitionState)
}
