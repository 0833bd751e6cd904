package router

import (
	"context"
	"sync"

	"github.com/deppfellow/luxury-living/internal/database"
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memDB is an in-memory stand-in for the five collections. down makes
// every call fail the way an unreachable cluster does.
type memDB struct {
	mu       sync.Mutex
	down     bool
	reviews  []model.Review
	users    []model.User
	services []model.Service
	orders   []model.Order
	projects []model.Project
}

func (m *memDB) fail(collection, op string) error {
	if m.down {
		return storeerr.Wrap(mongo.ErrClientDisconnected, collection, op)
	}
	return nil
}

func inserted(id primitive.ObjectID) *model.InsertResult {
	return &model.InsertResult{Acknowledged: true, InsertedID: id.Hex()}
}

type memReviews struct{ *memDB }

func (m memReviews) List(ctx context.Context) ([]model.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(database.ReviewsCollection, "find"); err != nil {
		return nil, err
	}
	return append([]model.Review{}, m.reviews...), nil
}

func (m memReviews) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(database.ReviewsCollection, "insert_one"); err != nil {
		return nil, err
	}
	review.ID = primitive.NewObjectID()
	m.reviews = append(m.reviews, *review)
	return inserted(review.ID), nil
}

type memUsers struct{ *memDB }

func (m memUsers) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return inserted(user.ID), nil
}

func (m memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			user := m.users[i]
			return &user, nil
		}
	}
	return nil, storeerr.Wrap(mongo.ErrNoDocuments, database.UsersCollection, "find_one")
}

func (m memUsers) UpsertByEmail(ctx context.Context, email string, fields map[string]interface{}) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := &model.UpdateResult{Acknowledged: true}
	for i := range m.users {
		if m.users[i].Email != email {
			continue
		}
		res.MatchedCount++
		if applyUserFields(&m.users[i], fields) {
			res.ModifiedCount++
		}
	}
	if res.MatchedCount == 0 {
		user := model.User{Email: email}
		user.ID = primitive.NewObjectID()
		applyUserFields(&user, fields)
		m.users = append(m.users, user)
		id := user.ID.Hex()
		res.UpsertedCount, res.UpsertedID = 1, &id
	}
	return res, nil
}

// applyUserFields sets the typed fields of a $set document on u and reports
// whether anything changed.
func applyUserFields(u *model.User, fields map[string]interface{}) bool {
	changed := false
	if name, ok := fields["displayName"].(string); ok && name != u.DisplayName {
		u.DisplayName = name
		changed = true
	}
	if role, ok := fields["role"].(string); ok && role != u.Role {
		u.Role = role
		changed = true
	}
	return changed
}

func (m memUsers) SetRole(ctx context.Context, email, role string) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			m.users[i].Role = role
			return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	user := model.User{Email: email, Role: role}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, user)
	id := user.ID.Hex()
	return &model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

type memServices struct{ *memDB }

func (m memServices) List(ctx context.Context) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail(database.ServicesCollection, "find"); err != nil {
		return nil, err
	}
	return append([]model.Service{}, m.services...), nil
}

func (m memServices) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			svc := m.services[i]
			return &svc, nil
		}
	}
	return nil, storeerr.Wrap(mongo.ErrNoDocuments, database.ServicesCollection, "find_one")
}

func (m memServices) Create(ctx context.Context, service *model.Service) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	service.ID = primitive.NewObjectID()
	m.services = append(m.services, *service)
	return inserted(service.ID), nil
}

func (m memServices) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

type memOrders struct{ *memDB }

func (m memOrders) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.orders)), nil
}

func (m memOrders) List(ctx context.Context, skip, limit int64) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Order{}
	for i := skip; i < int64(len(m.orders)); i++ {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		out = append(out, m.orders[i])
	}
	return out, nil
}

func (m memOrders) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Order{}
	for _, o := range m.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m memOrders) Create(ctx context.Context, order *model.Order) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = primitive.NewObjectID()
	m.orders = append(m.orders, *order)
	return inserted(order.ID), nil
}

func (m memOrders) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID != id {
			continue
		}
		modified := int64(0)
		if status, ok := fields["status"].(string); ok && status != m.orders[i].Status {
			m.orders[i].Status = status
			modified = 1
		}
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m memOrders) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

type memProjects struct{ *memDB }

func (m memProjects) List(ctx context.Context) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Project{}, m.projects...), nil
}

// recordingIntents stands in for the Stripe client.
type recordingIntents struct {
	mu      sync.Mutex
	amounts []int64
}

func (r *recordingIntents) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amounts = append(r.amounts, amount)
	return "pi_test_secret", nil
}
