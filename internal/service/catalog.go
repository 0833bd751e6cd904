package service

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService manages the services the business offers.
type CatalogService struct {
	store ServiceStore
}

func NewCatalogService(store ServiceStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List(ctx context.Context) ([]model.Service, error) {
	return s.store.List(ctx)
}

// Get returns the service with id; a missing one surfaces as a not found
// store error.
func (s *CatalogService) Get(ctx context.Context, req *model.GetServiceRequest) (*model.Service, error) {
	id, err := primitive.ObjectIDFromHex(req.ServiceID)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.InsertResult, error) {
	return s.store.Create(ctx, req.Document())
}

func (s *CatalogService) Delete(ctx context.Context, req *model.IDRequest) (*model.DeleteResult, error) {
	id, err := req.ObjectID()
	if err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, id)
}
