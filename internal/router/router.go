// Package router builds the Echo instance: the middleware stack, the
// system routes and the API routes.
package router

import (
	"github.com/deppfellow/luxury-living/internal/handler"
	"github.com/deppfellow/luxury-living/internal/middleware"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires the middleware in the order the request-scoped pieces
// depend on each other: the request id comes before the New Relic
// transaction, both come before the context logger, and the logger comes
// before everything that logs.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.BodyLimit(),
		middlewares.Global.Public(),
	)

	registerSystemRoutes(router, h)
	registerRoutes(router, h)

	return router
}
