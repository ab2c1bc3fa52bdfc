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

type FollowUpService interface {
	Create(ctx context.Context, actor *entities.Actor, input *entities.CreateFollowUpInput) (*entities.FollowUp, error)
	Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateFollowUpInput) (*entities.FollowUp, error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error)
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.FollowUp, error)
	List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.FollowUp], error)
}

// FollowUpHandler handles the lead interaction log
type FollowUpHandler struct {
	followUpUsecase FollowUpService
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(followUpUsecase FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{followUpUsecase: followUpUsecase}
}

// CreateFollowUp
// POST /api/v1/follow-ups
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	var input entities.CreateFollowUpInput
	if !bindJSON(c, &input) {
		return
	}

	f, err := h.followUpUsecase.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// ListFollowUps
// GET /api/v1/follow-ups
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.followUpUsecase.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListFollowUpsByLead
// GET /api/v1/follow-ups/lead/:leadId
func (h *FollowUpHandler) ListFollowUpsByLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "leadId")
	if !ok {
		return
	}

	followUps, err := h.followUpUsecase.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": followUps})
}

// GetFollowUp
// GET /api/v1/follow-ups/:id
func (h *FollowUpHandler) GetFollowUp(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	f, err := h.followUpUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// UpdateFollowUp. Operators may only edit their own.
// PATCH /api/v1/follow-ups/:id
func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateFollowUpInput
	if !bindJSON(c, &input) {
		return
	}

	f, err := h.followUpUsecase.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// DeleteFollowUp
// DELETE /api/v1/follow-ups/:id
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.followUpUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
