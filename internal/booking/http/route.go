package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/clubs/:id/availability", h.Availability)

	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.POST("/quote", h.Quote)
		group.GET("/:id", h.Get)
		group.POST("/:id/confirm", h.Confirm)
		group.POST("/:id/cancel", h.Cancel)
		group.GET("/:id/extension", h.ExtensionPool)
		group.GET("/:id/extension/availability", h.ExtensionAvailability)
		group.POST("/:id/extend", h.Extend)
	}
}
