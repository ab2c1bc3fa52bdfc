package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations. Reads include deactivated
// accounts so lifecycle endpoints and email uniqueness see every row.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context, filter ListFilter) ([]*entities.User, int64, error)
}
