package handler

import (
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Reviews  *ReviewHandler
	Users    *UserHandler
	Catalog  *CatalogHandler
	Orders   *OrderHandler
	Projects *ProjectHandler
	Payments *PaymentHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Reviews:  NewReviewHandler(s, services.Reviews),
		Users:    NewUserHandler(s, services.Users),
		Catalog:  NewCatalogHandler(s, services.Catalog),
		Orders:   NewOrderHandler(s, services.Orders),
		Projects: NewProjectHandler(s, services.Projects),
		Payments: NewPaymentHandler(s, services.Payments),
	}
}
