package service

import (
	"context"

	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/storeerr"
	"github.com/rs/zerolog"
)

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Create inserts a user record. Emails are not unique, so registering the
// same email twice creates two documents.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.InsertResult, error) {
	return s.store.Create(ctx, req.Document())
}

// Upsert writes the provided fields onto every user with the email and
// creates one when none exists.
func (s *UserService) Upsert(ctx context.Context, req *model.UpsertUserRequest) (*model.UpdateResult, error) {
	res, err := s.store.UpsertByEmail(ctx, req.Email, req.Fields())
	if err != nil {
		return nil, err
	}

	if res.MatchedCount > 1 {
		zerolog.Ctx(ctx).Warn().
			Str("email", req.Email).
			Int64("matched", res.MatchedCount).
			Msg("user upsert touched more than one document with the same email")
	}

	return res, nil
}

// MakeAdmin grants the admin role, creating the user when needed.
func (s *UserService) MakeAdmin(ctx context.Context, req *model.MakeAdminRequest) (*model.UpdateResult, error) {
	return s.store.SetRole(ctx, req.Email, model.RoleAdmin)
}

// Role reports whether email belongs to an admin. An unknown email is a
// regular visitor, not an error.
func (s *UserService) Role(ctx context.Context, req *model.GetUserRoleRequest) (*model.UserRole, error) {
	user, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		if storeerr.IsNotFound(err) {
			return &model.UserRole{Admin: false}, nil
		}
		return nil, err
	}
	return &model.UserRole{Admin: user.IsAdmin()}, nil
}
