package service

import (
	"time"

	"github.com/deppfellow/luxury-living/internal/repository"
	"github.com/deppfellow/luxury-living/internal/server"
)

type Services struct {
	Reviews  *ReviewService
	Users    *UserService
	Catalog  *CatalogService
	Orders   *OrderService
	Projects *ProjectService
	Payments *PaymentService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return New(Stores{
		Reviews:  repos.Reviews,
		Users:    repos.Users,
		Services: repos.Services,
		Orders:   repos.Orders,
		Projects: repos.Projects,
		Payments: s.Payment,
	}), nil
}

// Stores groups the dependencies of New.
type Stores struct {
	Reviews  ReviewStore
	Users    UserStore
	Services ServiceStore
	Orders   OrderStore
	Projects ProjectStore
	Payments IntentCreator
}

// New builds every service from stores, using the wall clock.
func New(stores Stores) *Services {
	now := Clock(time.Now)

	return &Services{
		Reviews:  NewReviewService(stores.Reviews, now),
		Users:    NewUserService(stores.Users),
		Catalog:  NewCatalogService(stores.Services),
		Orders:   NewOrderService(stores.Orders, now),
		Projects: NewProjectService(stores.Projects),
		Payments: NewPaymentService(stores.Payments),
	}
}
