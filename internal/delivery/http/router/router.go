// Package router registers the HTTP routes.
package router

import (
	"prepcat/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams defines the dependencies required by the router
type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	CatalogHandler    *handler.CatalogHandler
	SessionHandler    *handler.SessionHandler
	ProductHandler    *handler.ProductHandler
	MasterItemHandler *handler.MasterItemHandler
	TagHandler        *handler.TagHandler
}

// Router manages all HTTP routes
type Router struct {
	params RouterParams
}

// NewRouter creates a new router
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes registers all routes on the echo instance.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.params.HealthHandler.Check)

	catalog := e.Group("/catalog")
	catalog.GET("/tree", r.params.CatalogHandler.GetTree)
	catalog.GET("/products", r.params.CatalogHandler.ListProducts)
	catalog.POST("/snapshot/reload", r.params.CatalogHandler.ReloadSnapshot)

	sessions := e.Group("/sessions")
	sessions.POST("", r.params.SessionHandler.Create)
	sessions.GET("/:id/state", r.params.SessionHandler.GetState)
	sessions.PUT("/:id/filters", r.params.SessionHandler.SetFilters)
	sessions.PUT("/:id/sort", r.params.SessionHandler.SetSort)
	sessions.POST("/:id/groups/toggle", r.params.SessionHandler.ToggleGroup)
	sessions.POST("/:id/clicks", r.params.SessionHandler.Click)
	sessions.POST("/:id/context-menu", r.params.SessionHandler.OpenContextMenu)
	sessions.POST("/:id/clipboard/copy", r.params.SessionHandler.CopyTags)
	sessions.POST("/:id/clipboard/paste", r.params.SessionHandler.PasteTags)
	sessions.DELETE("/:id", r.params.SessionHandler.Delete)

	products := e.Group("/products")
	products.POST("", r.params.ProductHandler.Create)
	products.POST("/bulk", r.params.ProductHandler.BulkReassign)
	products.GET("/:id", r.params.ProductHandler.Get)
	products.PUT("/:id", r.params.ProductHandler.Update)
	products.DELETE("/:id", r.params.ProductHandler.Delete)
	products.PUT("/:id/tags", r.params.TagHandler.PatchTags)
	products.POST("/:id/tags/toggle", r.params.TagHandler.ToggleTag)
	products.POST("/:id/tags/reset", r.params.TagHandler.ResetTags)

	masterItems := e.Group("/master-items")
	masterItems.POST("", r.params.MasterItemHandler.Create)
	masterItems.PUT("/:id", r.params.MasterItemHandler.Update)
}
