package service

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
)

type OrderService struct {
	store OrderStore
	now   Clock
}

func NewOrderService(store OrderStore, now Clock) *OrderService {
	return &OrderService{store: store, now: now}
}

// List returns one page of orders, or all of them when no page was asked
// for. Count is always the total.
func (s *OrderService) List(ctx context.Context, req *model.ListOrdersRequest) (*model.OrderPage, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit, _ := req.Window()

	orders, err := s.store.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	return &model.OrderPage{Count: count, OrderList: orders}, nil
}

func (s *OrderService) ListByEmail(ctx context.Context, req *model.ListOrdersByEmailRequest) ([]model.Order, error) {
	return s.store.ListByEmail(ctx, req.Email)
}

func (s *OrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.InsertResult, error) {
	return s.store.Create(ctx, req.Document(s.now()))
}

func (s *OrderService) Update(ctx context.Context, req *model.UpdateOrderRequest) (*model.UpdateResult, error) {
	id, err := (&model.IDRequest{ID: req.ID}).ObjectID()
	if err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, req.Fields())
}

func (s *OrderService) Delete(ctx context.Context, req *model.IDRequest) (*model.DeleteResult, error) {
	id, err := req.ObjectID()
	if err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, id)
}
