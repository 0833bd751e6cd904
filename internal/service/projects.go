package service

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
)

type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.store.List(ctx)
}
