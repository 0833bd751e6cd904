// Package repository handles all interactions with the database.
//
// Each repository owns one MongoDB collection and issues exactly one driver
// call per method. Driver errors are wrapped with storeerr so the error
// handler can tell "not found" from "store down".
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Source resolves the collection a repository works on. It is called for
// every operation, so a database that connects after startup is picked up.
type Source func() (*mongo.Collection, error)

// Fixed is a Source for an already resolved collection.
func Fixed(coll *mongo.Collection) Source {
	return func() (*mongo.Collection, error) {
		return coll, nil
	}
}

// findAll runs a find and decodes every document. The result is never nil,
// so an empty collection serialises as [].
func findAll[T any](ctx context.Context, src Source, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	coll, err := src()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "find")
	}

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "find")
	}

	return results, nil
}

// findOne decodes the first matching document. No match is a storeerr
// NotFound.
func findOne[T any](ctx context.Context, src Source, filter interface{}) (*T, error) {
	coll, err := src()
	if err != nil {
		return nil, err
	}

	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "find_one")
	}
	return &doc, nil
}

func insertOne(ctx context.Context, src Source, doc interface{}) (*model.InsertResult, error) {
	coll, err := src()
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "insert_one")
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func deleteOne(ctx context.Context, src Source, filter interface{}) (*model.DeleteResult, error) {
	coll, err := src()
	if err != nil {
		return nil, err
	}

	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "delete_one")
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func updateResult(res *mongo.UpdateResult) *model.UpdateResult {
	out := &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}

func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
