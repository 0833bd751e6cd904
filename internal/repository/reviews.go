package repository

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

type ReviewRepository struct {
	coll Source
}

func NewReviewRepository(coll Source) *ReviewRepository {
	return &ReviewRepository{coll: coll}
}

func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	return findAll[model.Review](ctx, r.coll, bson.D{})
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	return insertOne(ctx, r.coll, review)
}
