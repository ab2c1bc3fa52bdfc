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

type LeadService interface {
	Create(ctx context.Context, actor *entities.Actor, input *entities.CreateLeadInput) (*entities.Lead, error)
	Capture(ctx context.Context, input *entities.CaptureInput) (*entities.LeadDetail, error)
	Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateLeadInput) (*entities.Lead, error)
	Deactivate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Lead, error)
	Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Lead, error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entities.LeadDetail, error)
	List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Lead], error)
	ListByStatus(ctx context.Context, status entities.LeadStatus) ([]*entities.Lead, error)
	Stats(ctx context.Context) (*entities.LeadStats, error)
}

// LeadHandler handles the lead funnel endpoints
type LeadHandler struct {
	leadUsecase LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUsecase LeadService) *LeadHandler {
	return &LeadHandler{leadUsecase: leadUsecase}
}

// CreateLead stores a lead. Public callers leave createdBy absent, staff
// callers (POST /leads/admin) are stamped as creator.
// POST /api/v1/leads
// POST /api/v1/leads/admin
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var input entities.CreateLeadInput
	if !bindJSON(c, &input) {
		return
	}

	lead, err := h.leadUsecase.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lead)
}

// CaptureLead stores the public form, lead and answers, in one transaction
// POST /api/v1/leads/capture
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var input entities.CaptureInput
	if !bindJSON(c, &input) {
		return
	}

	detail, err := h.leadUsecase.Capture(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, detail)
}

// ListLeads
// GET /api/v1/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.leadUsecase.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListLeadsByStatus returns one funnel column
// GET /api/v1/leads/status/:status
func (h *LeadHandler) ListLeadsByStatus(c *gin.Context) {
	leads, err := h.leadUsecase.ListByStatus(c.Request.Context(), entities.LeadStatus(c.Param("status")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": leads})
}

// GetLeadStats
// GET /api/v1/leads/stats
func (h *LeadHandler) GetLeadStats(c *gin.Context) {
	stats, err := h.leadUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetLead returns the lead with its answers and follow-ups
// GET /api/v1/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.leadUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// UpdateLead
// PATCH /api/v1/leads/:id
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateLeadInput
	if !bindJSON(c, &input) {
		return
	}

	lead, err := h.leadUsecase.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

// DeactivateLead
// PATCH /api/v1/leads/:id/deactivate
func (h *LeadHandler) DeactivateLead(c *gin.Context) {
	h.setActive(c, h.leadUsecase.Deactivate)
}

// ActivateLead
// PATCH /api/v1/leads/:id/activate
func (h *LeadHandler) ActivateLead(c *gin.Context) {
	h.setActive(c, h.leadUsecase.Activate)
}

func (h *LeadHandler) setActive(c *gin.Context, fn func(context.Context, *entities.Actor, uuid.UUID) (*entities.Lead, error)) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := fn(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

// DeleteLead
// DELETE /api/v1/leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
