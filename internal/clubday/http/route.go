package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/clubs/:id/days")

	// === Public Routes ===
	group.GET("", h.ListByClub)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.PUT("", h.Upsert)
		admin.POST("/generate", h.Generate)
	}
}
