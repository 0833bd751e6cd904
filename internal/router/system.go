package router

import (
	"github.com/deppfellow/luxury-living/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// site's API: liveness, health, and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Liveness)
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and the docs page.
	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
