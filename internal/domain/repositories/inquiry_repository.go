package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entities.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Inquiry, error)
	Update(ctx context.Context, inquiry *entities.Inquiry) error
	List(ctx context.Context, filter ListFilter) ([]*entities.Inquiry, int64, error)
	// ListByStatus returns live inquiries in status, newest first
	ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error)
}
