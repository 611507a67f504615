package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/costumes")
	{
		// Catalog reads are public.
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/image", h.GetImage)

		// === Admin Routes ===
		group.POST("", authMiddleware, adminMiddleware, h.Create)
		group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
		group.POST("/:id/image", authMiddleware, adminMiddleware, h.UploadImage)
	}
}
