package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index describes one secondary index the application relies on.
type Index struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes lists the lookup indexes created at startup.
//
// Both email indexes are non-unique. Several users or orders may share an
// email and POST /users never rejects a repeated one.
func Indexes() []Index {
	return []Index{
		{
			Collection: UsersCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("users_email"),
			},
		},
		{
			Collection: OrdersCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("orderList_email"),
			},
		},
	}
}

// EnsureIndexes creates every index from Indexes.
//
// CreateOne is a no-op when an identical index already exists, so this
// runs on every start.
func (db *Database) EnsureIndexes(ctx context.Context) error {
	for _, idx := range Indexes() {
		coll, err := db.Collection(idx.Collection)
		if err != nil {
			return err
		}

		name, err := coll.Indexes().CreateOne(ctx, idx.Model)
		if err != nil {
			return fmt.Errorf("creating index on %s: %w", idx.Collection, err)
		}
		db.log.Debug().Str("collection", idx.Collection).Str("index", name).Msg("index ensured")
	}
	return nil
}
