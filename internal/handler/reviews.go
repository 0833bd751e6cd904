package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Handler: NewHandler(s), reviews: reviews}
}

func (h *ReviewHandler) List(c echo.Context, _ *model.EmptyRequest) ([]model.Review, error) {
	return h.reviews.List(c.Request().Context())
}

func (h *ReviewHandler) Create(c echo.Context, req *model.CreateReviewRequest) (*model.InsertResult, error) {
	return h.reviews.Create(c.Request().Context(), req)
}
