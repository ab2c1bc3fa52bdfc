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

type AnswerService interface {
	Submit(ctx context.Context, actor *entities.Actor, input *entities.SubmitAnswersInput) ([]*entities.Answer, error)
	Create(ctx context.Context, actor *entities.Actor, input *entities.CreateAnswerInput) (*entities.Answer, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Answer, error)
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.Answer, error)
	List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Answer], error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
}

// AnswerHandler handles qualification answer endpoints
type AnswerHandler struct {
	answerUsecase AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerUsecase AnswerService) *AnswerHandler {
	return &AnswerHandler{answerUsecase: answerUsecase}
}

// CreateAnswer stores one answer
// POST /api/v1/answers
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var input entities.CreateAnswerInput
	if !bindJSON(c, &input) {
		return
	}

	answer, err := h.answerUsecase.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, answer)
}

// SubmitAnswers stores a batch of answers for one lead
// POST /api/v1/answers/batch
func (h *AnswerHandler) SubmitAnswers(c *gin.Context) {
	var input entities.SubmitAnswersInput
	if !bindJSON(c, &input) {
		return
	}

	answers, err := h.answerUsecase.Submit(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"items": answers})
}

// ListAnswers
// GET /api/v1/answers
func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.answerUsecase.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListAnswersByLead
// GET /api/v1/answers/lead/:leadId
func (h *AnswerHandler) ListAnswersByLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "leadId")
	if !ok {
		return
	}

	answers, err := h.answerUsecase.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": answers})
}

// GetAnswer
// GET /api/v1/answers/:id
func (h *AnswerHandler) GetAnswer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	answer, err := h.answerUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, answer)
}

// DeleteAnswer
// DELETE /api/v1/answers/:id
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.answerUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
