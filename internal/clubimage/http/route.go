package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/clubs/:id/images", h.ListByClub)
	g.GET("/club-images/:id", h.ServeImage)
	g.GET("/club-images/:id/thumbnail", h.ServeThumbnail)

	// === Admin Routes ===
	g.POST("/clubs/:id/images", authMiddleware, adminMiddleware, h.Upload)
	g.DELETE("/club-images/:id", authMiddleware, adminMiddleware, h.Delete)
}
