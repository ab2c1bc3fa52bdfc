package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entities.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Question, error)
	Update(ctx context.Context, question *entities.Question) error
	List(ctx context.Context, filter ListFilter) ([]*entities.Question, int64, error)
	// ListActive returns live questions oldest first
	ListActive(ctx context.Context) ([]*entities.Question, error)
}
