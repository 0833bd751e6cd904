package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the /services routes.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Handler: NewHandler(s), catalog: catalog}
}

func (h *CatalogHandler) List(c echo.Context, _ *model.EmptyRequest) ([]model.Service, error) {
	return h.catalog.List(c.Request().Context())
}

func (h *CatalogHandler) Get(c echo.Context, req *model.GetServiceRequest) (*model.Service, error) {
	return h.catalog.Get(c.Request().Context(), req)
}

func (h *CatalogHandler) Create(c echo.Context, req *model.CreateServiceRequest) (*model.InsertResult, error) {
	return h.catalog.Create(c.Request().Context(), req)
}

func (h *CatalogHandler) Delete(c echo.Context, req *model.IDRequest) (*model.DeleteResult, error) {
	return h.catalog.Delete(c.Request().Context(), req)
}
