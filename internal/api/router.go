package api

import (
	"quanngon-be/internal/realtime"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP endpoints onto the engine. Route groups
// stay flat: the storefront and the admin dashboard share one API surface.
func RegisterRoutes(
	r *gin.Engine,
	orders *OrderHandler,
	menus *MenuHandler,
	settings *SettingsHandler,
	ws *realtime.WSHandler,
) {
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/orders", orders.Create)
		apiGroup.GET("/orders", orders.List)
		apiGroup.GET("/orders/stats", orders.Stats)
		apiGroup.GET("/orders/:id", orders.GetByID)
		apiGroup.PATCH("/orders/:id/status", orders.UpdateStatus)
		apiGroup.DELETE("/orders/:id", orders.Delete)

		apiGroup.GET("/categories", menus.ListCategories)
		apiGroup.POST("/categories", menus.CreateCategory)
		apiGroup.PUT("/categories/:id", menus.UpdateCategory)
		apiGroup.DELETE("/categories/:id", menus.DeleteCategory)

		apiGroup.GET("/menu-items", menus.ListItems)
		apiGroup.POST("/menu-items", menus.CreateItem)
		apiGroup.GET("/menu-items/:id", menus.GetItem)
		apiGroup.PUT("/menu-items/:id", menus.UpdateItem)
		apiGroup.DELETE("/menu-items/:id", menus.DeleteItem)

		apiGroup.GET("/settings", settings.Get)
		apiGroup.PUT("/settings", settings.Update)
	}

	r.GET("/ws/orders", ws.Handle)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
