package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// LeadRepository defines lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	// GetByID returns the lead whether or not it is deactivated
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error)
	// Update persists every mutable column, audit stamps included
	Update(ctx context.Context, lead *entities.Lead) error
	List(ctx context.Context, filter ListFilter) ([]*entities.Lead, int64, error)
	// ListByStatus returns live leads in status, newest first
	ListByStatus(ctx context.Context, status entities.LeadStatus) ([]*entities.Lead, error)
	// CountByStatus counts live leads grouped by status
	CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error)
}
