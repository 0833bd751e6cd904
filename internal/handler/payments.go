package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	Handler
	payments *service.PaymentService
}

func NewPaymentHandler(s *server.Server, payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{Handler: NewHandler(s), payments: payments}
}

// CreateIntent answers with the client secret the checkout page confirms
// the card against.
func (h *PaymentHandler) CreateIntent(c echo.Context, req *model.CreatePaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	return h.payments.CreateIntent(c.Request().Context(), req)
}
