package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds the OpenAPI document and the docs page.
const StaticDir = "static"

// OpenAPIHandler serves the API docs page. The page loads
// /static/openapi.json in the browser.
type OpenAPIHandler struct {
	Handler
	page string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		page:    filepath.Join(StaticDir, "openapi.html"),
	}
}

// ServeOpenAPIUI reads the page on every request, so edits show up without
// a restart.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.page)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
