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

type InquiryService interface {
	Create(ctx context.Context, input *entities.CreateInquiryInput) (*entities.Inquiry, error)
	Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateInquiryInput) (*entities.Inquiry, error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entities.Inquiry, error)
	ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error)
	List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Inquiry], error)
}

// InquiryHandler handles public inquiries ("duvidas")
type InquiryHandler struct {
	inquiryUsecase InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase}
}

// CreateInquiry is the public entry point
// POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input entities.CreateInquiryInput
	if !bindJSON(c, &input) {
		return
	}

	q, err := h.inquiryUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, q)
}

// ListInquiries
// GET /api/v1/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.inquiryUsecase.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListInquiriesByStatus
// GET /api/v1/inquiries/status/:status
func (h *InquiryHandler) ListInquiriesByStatus(c *gin.Context) {
	inquiries, err := h.inquiryUsecase.ListByStatus(c.Request.Context(), entities.InquiryStatus(c.Param("status")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": inquiries})
}

// GetInquiry
// GET /api/v1/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	q, err := h.inquiryUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// UpdateInquiry answers or triages an inquiry
// PATCH /api/v1/inquiries/:id
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateInquiryInput
	if !bindJSON(c, &input) {
		return
	}

	q, err := h.inquiryUsecase.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// DeleteInquiry
// DELETE /api/v1/inquiries/:id
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inquiryUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
