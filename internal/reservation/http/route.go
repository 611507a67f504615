package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/my", h.My)
		group.POST("/check-availability", h.CheckAvailability)

		// === Admin Routes ===
		group.GET("", adminMiddleware, h.List)
		group.POST("/:id/approve", adminMiddleware, h.Approve)
		group.POST("/:id/reject", adminMiddleware, h.Reject)
	}
}
