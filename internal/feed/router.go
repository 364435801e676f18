package feed

import (
	"github.com/gin-gonic/gin"

	"github.com/RootViper4/admin-portabitity/internal/middleware"
)

// RegisterRoutes mounts the websocket feed endpoint. The feed delivers the
// raw snapshot, so it is admin-only; guests get the empty derived views over
// plain HTTP instead.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/ws/feed", middleware.RequireAuth(), middleware.RequireAdmin(), h.Feed)
}
