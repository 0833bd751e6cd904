package repository

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll Source
}

func NewUserRepository(coll Source) *UserRepository {
	return &UserRepository{coll: coll}
}

// Create inserts without checking for an existing email.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	return insertOne(ctx, r.coll, user)
}

// FindByEmail returns the first user with email. Emails are not unique, so
// with duplicates the pick is whichever the server returns first.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.D{{Key: "email", Value: email}})
}

// UpsertByEmail applies fields to every user with email, inserting one when
// none match.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email string, fields map[string]interface{}) (*model.UpdateResult, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	res, err := coll.UpdateMany(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: fields}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "update_many")
	}
	return updateResult(res), nil
}

// SetRole sets role on the first user with email, inserting one when none
// match.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) (*model.UpdateResult, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, storeerr.Wrap(err, coll.Name(), "update_one")
	}
	return updateResult(res), nil
}
