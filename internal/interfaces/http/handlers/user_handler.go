package handlers

import (
	"context"
	"net/http"

	"captura-leads.backend/internal/domain/entities"
	"captura-leads.backend/internal/interfaces/http/middleware"
	"captura-leads.backend/internal/interfaces/http/response"
	"captura-leads.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, actor *entities.Actor, input *entities.CreateUserInput) (*entities.User, error)
	List(ctx context.Context, actor *entities.Actor, page utils.PageParams) (utils.PageResult[*entities.User], error)
	Get(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error)
	Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error)
	Deactivate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error)
	Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
}

// UserHandler handles staff account endpoints
type UserHandler struct {
	userUsecase UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase UserService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser creates a staff account
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userUsecase.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// ListUsers lists accounts. Operators only see themselves.
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.userUsecase.List(c.Request.Context(), middleware.GetActor(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetUser returns one account
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateUser applies a partial update
// PATCH /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeactivateUser
// PATCH /api/v1/users/:id/deactivate
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.setActive(c, h.userUsecase.Deactivate)
}

// ActivateUser
// PATCH /api/v1/users/:id/activate
func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.setActive(c, h.userUsecase.Activate)
}

func (h *UserHandler) setActive(c *gin.Context, fn func(context.Context, *entities.Actor, uuid.UUID) (*entities.User, error)) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := fn(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteUser soft deletes an account
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
