package repository

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceRepository struct {
	coll Source
}

func NewServiceRepository(coll Source) *ServiceRepository {
	return &ServiceRepository{coll: coll}
}

func (r *ServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	return findAll[model.Service](ctx, r.coll, bson.D{})
}

func (r *ServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Service, error) {
	return findOne[model.Service](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *ServiceRepository) Create(ctx context.Context, service *model.Service) (*model.InsertResult, error) {
	return insertOne(ctx, r.coll, service)
}

func (r *ServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}
