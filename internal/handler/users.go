package handler

import (
	"github.com/deppfellow/luxury-living/internal/model"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/deppfellow/luxury-living/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

func (h *UserHandler) Create(c echo.Context, req *model.CreateUserRequest) (*model.InsertResult, error) {
	return h.users.Create(c.Request().Context(), req)
}

func (h *UserHandler) Upsert(c echo.Context, req *model.UpsertUserRequest) (*model.UpdateResult, error) {
	return h.users.Upsert(c.Request().Context(), req)
}

func (h *UserHandler) MakeAdmin(c echo.Context, req *model.MakeAdminRequest) (*model.UpdateResult, error) {
	return h.users.MakeAdmin(c.Request().Context(), req)
}

func (h *UserHandler) Role(c echo.Context, req *model.GetUserRoleRequest) (*model.UserRole, error) {
	return h.users.Role(c.Request().Context(), req)
}
