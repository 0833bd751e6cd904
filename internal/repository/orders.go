package repository

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	coll Source
}

func NewOrderRepository(coll Source) *OrderRepository {
	return &OrderRepository{coll: coll}
}

// Count returns the number of orders, ignoring any paging.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	coll, err := r.coll()
	if err != nil {
		return 0, err
	}

	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storeerr.Wrap(err, coll.Name(), "count")
	}
	return n, nil
}

// List returns orders in natural order. limit 0 returns everything from skip.
func (r *OrderRepository) List(ctx context.Context, skip, limit int64) ([]model.Order, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return findAll[model.Order](ctx, r.coll, bson.D{}, opts)
}

func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return findAll[model.Order](ctx, r.coll, bson.D{{Key: "email", Value: email}})
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) (*model.InsertResult, error) {
	return insertOne(ctx, r.coll, order)
}

// Update sets fields on the order with id. A missing order is not an error;
// the result reports matchedCount 0.
func (r *OrderRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.UpdateResult, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
	)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "update_one")
	}
	return updateResult(res), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	return deleteOne(ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}
