package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	Handler
	projects *service.ProjectService
}

func NewProjectHandler(s *server.Server, projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{Handler: NewHandler(s), projects: projects}
}

func (h *ProjectHandler) List(c echo.Context, _ *model.EmptyRequest) ([]model.Project, error) {
	return h.projects.List(c.Request().Context())
}
