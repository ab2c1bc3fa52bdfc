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

type QuestionService interface {
	Create(ctx context.Context, actor *entities.Actor, input *entities.CreateQuestionInput) (*entities.Question, error)
	Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateQuestionInput) (*entities.Question, error)
	Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error
	Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Question, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Question, error)
	List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Question], error)
	ListActive(ctx context.Context) ([]*entities.Question, error)
}

// QuestionHandler handles qualification question endpoints
type QuestionHandler struct {
	questionUsecase QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionUsecase QuestionService) *QuestionHandler {
	return &QuestionHandler{questionUsecase: questionUsecase}
}

// CreateQuestion
// POST /api/v1/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input entities.CreateQuestionInput
	if !bindJSON(c, &input) {
		return
	}

	q, err := h.questionUsecase.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, q)
}

// ListQuestions lists every question, inactive included
// GET /api/v1/questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	result, err := h.questionUsecase.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListActiveQuestions returns the public form in display order
// GET /api/v1/questions/active
func (h *QuestionHandler) ListActiveQuestions(c *gin.Context) {
	questions, err := h.questionUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": questions})
}

// GetQuestion
// GET /api/v1/questions/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	q, err := h.questionUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// UpdateQuestion
// PATCH /api/v1/questions/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateQuestionInput
	if !bindJSON(c, &input) {
		return
	}

	q, err := h.questionUsecase.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// ActivateQuestion puts a deleted question back on the public form
// PATCH /api/v1/questions/:id/activate
func (h *QuestionHandler) ActivateQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	q, err := h.questionUsecase.Activate(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// DeleteQuestion
// DELETE /api/v1/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionUsecase.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
