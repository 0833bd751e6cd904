package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{Handler: NewHandler(s), orders: orders}
}

func (h *OrderHandler) List(c echo.Context, req *model.ListOrdersRequest) (*model.OrderPage, error) {
	return h.orders.List(c.Request().Context(), req)
}

func (h *OrderHandler) ListByEmail(c echo.Context, req *model.ListOrdersByEmailRequest) ([]model.Order, error) {
	return h.orders.ListByEmail(c.Request().Context(), req)
}

func (h *OrderHandler) Create(c echo.Context, req *model.CreateOrderRequest) (*model.InsertResult, error) {
	return h.orders.Create(c.Request().Context(), req)
}

func (h *OrderHandler) Update(c echo.Context, req *model.UpdateOrderRequest) (*model.UpdateResult, error) {
	return h.orders.Update(c.Request().Context(), req)
}

func (h *OrderHandler) Delete(c echo.Context, req *model.IDRequest) (*model.DeleteResult, error) {
	return h.orders.Delete(c.Request().Context(), req)
}
