package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type FollowUpRepository interface {
	Create(ctx context.Context, followUp *entities.FollowUp) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error)
	Update(ctx context.Context, followUp *entities.FollowUp) error
	List(ctx context.Context, filter ListFilter) ([]*entities.FollowUp, int64, error)
	// ListByLead returns live follow-ups of a lead newest first
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.FollowUp, error)
}
