package service

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
)

type ReviewService struct {
	store ReviewStore
	now   Clock
}

func NewReviewService(store ReviewStore, now Clock) *ReviewService {
	return &ReviewService{store: store, now: now}
}

func (s *ReviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.store.List(ctx)
}

func (s *ReviewService) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.InsertResult, error) {
	return s.store.Create(ctx, req.Document(s.now()))
}
