package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

// GetByID gets a user by ID, deactivated or not
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email, deactivated or not
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update writes every mutable column
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := mergeUpdates(map[string]interface{}{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          string(user.Role),
		"is_active":     user.IsActive,
	}, user.Audit)
	return updateRow(GetDB(ctx, r.db), &models.User{}, user.ID, updates)
}

// List returns a page of users, newest first
func (r *UserRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
	rows, total, err := paginate[models.User](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	users := make([]*entities.User, 0, len(rows))
	for i := range rows {
		users = append(users, r.toEntity(&rows[i]))
	}
	return users, total, nil
}

func (r *UserRepository) toModel(u *entities.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		AuditColumns: toAuditModel(u.Audit),
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		IsActive:     m.IsActive,
		Audit:        toAuditEntity(m.AuditColumns),
	}
}
