package repository

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

type ProjectRepository struct {
	coll Source
}

func NewProjectRepository(coll Source) *ProjectRepository {
	return &ProjectRepository{coll: coll}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	return findAll[model.Project](ctx, r.coll, bson.D{})
}
