package router

import (
	"net/http"

	"github.com/deppfellow/luxury-living/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerRoutes registers the API. Writes answer 200 with the store
// acknowledgement, which is what the site's frontend expects.
func registerRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/reviews", handler.Handle(h.Reviews.List, http.StatusOK))
	r.POST("/reviews", handler.Handle(h.Reviews.Create, http.StatusOK))

	r.GET("/services", handler.Handle(h.Catalog.List, http.StatusOK))
	r.GET("/services/:serviceId", handler.Handle(h.Catalog.Get, http.StatusOK))
	r.POST("/services", handler.Handle(h.Catalog.Create, http.StatusOK))
	r.DELETE("/services/:id", handler.Handle(h.Catalog.Delete, http.StatusOK))

	r.GET("/orderList", handler.Handle(h.Orders.List, http.StatusOK))
	r.GET("/orderList/:email", handler.Handle(h.Orders.ListByEmail, http.StatusOK))
	r.POST("/orderList", handler.Handle(h.Orders.Create, http.StatusOK))
	r.PUT("/orderList/:id", handler.Handle(h.Orders.Update, http.StatusOK))
	r.DELETE("/orderList/:id", handler.Handle(h.Orders.Delete, http.StatusOK))

	r.GET("/projects", handler.Handle(h.Projects.List, http.StatusOK))

	// /users/admin is static and wins over /users/:email.
	r.POST("/users", handler.Handle(h.Users.Create, http.StatusOK))
	r.PUT("/users", handler.Handle(h.Users.Upsert, http.StatusOK))
	r.PUT("/users/admin", handler.Handle(h.Users.MakeAdmin, http.StatusOK))
	r.GET("/users/:email", handler.Handle(h.Users.Role, http.StatusOK))

	r.POST("/create-payment-intent", handler.Handle(h.Payments.CreateIntent, http.StatusOK))
}
