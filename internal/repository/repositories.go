package repository

import (
	"github.com/deppfellow/luxury-living/internal/database"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Reviews  *ReviewRepository
	Users    *UserRepository
	Services *ServiceRepository
	Orders   *OrderRepository
	Projects *ProjectRepository
}

// NewRepositories hands each repository its collection from s.DB.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB
	return &Repositories{
		Reviews:  NewReviewRepository(collection(db, database.ReviewsCollection)),
		Users:    NewUserRepository(collection(db, database.UsersCollection)),
		Services: NewServiceRepository(collection(db, database.ServicesCollection)),
		Orders:   NewOrderRepository(collection(db, database.OrdersCollection)),
		Projects: NewProjectRepository(collection(db, database.ProjectsCollection)),
	}
}

// collection resolves name on db per call. A database that is not connected
// yields a storeerr Unavailable error.
func collection(db *database.Database, name string) Source {
	return func() (*mongo.Collection, error) {
		coll, err := db.Collection(name)
		if err != nil {
			return nil, storeerr.Wrap(err, name, "connect")
		}
		return coll, nil
	}
}
