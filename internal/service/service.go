// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// requests from the handler, applies the few rules the site has (paging,
// the admin check, converting prices to cents), and calls one repository or
// the payment client.
//
// Each service depends on a small store interface rather than the concrete
// repository, so tests can substitute in-memory stores.
package service

import (
	"context"
	"time"

	"github.com/deppfellow/luxury-living/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStore interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) (*model.InsertResult, error)
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) (*model.InsertResult, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertByEmail(ctx context.Context, email string, fields map[string]interface{}) (*model.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*model.UpdateResult, error)
}

type ServiceStore interface {
	List(ctx context.Context) ([]model.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) (*model.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

type OrderStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) (*model.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

type ProjectStore interface {
	List(ctx context.Context) ([]model.Project, error)
}

// IntentCreator creates a payment intent for an amount in cents and returns
// its client secret.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time
