package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entities.Answer) error
	CreateBatch(ctx context.Context, answers []*entities.Answer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Answer, error)
	Update(ctx context.Context, answer *entities.Answer) error
	List(ctx context.Context, filter ListFilter) ([]*entities.Answer, int64, error)
	// ListByLead returns live answers of a lead oldest first
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.Answer, error)
}
