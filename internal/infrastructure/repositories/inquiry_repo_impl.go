package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InquiryRepository implements inquiry data operations
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	return translateError(GetDB(ctx, r.db).Create(r.toModel(inquiry)).Error)
}

func (r *InquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Inquiry, error) {
	var m models.Inquiry
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *InquiryRepository) Update(ctx context.Context, inquiry *entities.Inquiry) error {
	fields := map[string]interface{}{
		"name":     inquiry.Name,
		"email":    inquiry.Email,
		"phone":    inquiry.Phone,
		"question": inquiry.Question,
		"answer":   inquiry.Answer,
		"status":   string(inquiry.Status),
	}
	return updateRow(GetDB(ctx, r.db), &models.Inquiry{}, inquiry.ID, mergeUpdates(fields, inquiry.Audit))
}

func (r *InquiryRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Inquiry, int64, error) {
	rows, total, err := paginate[models.Inquiry](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	return r.toEntities(rows), total, nil
}

// ListByStatus returns live inquiries with the given status, newest first
func (r *InquiryRepository) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	var rows []models.Inquiry
	err := live(GetDB(ctx, r.db)).
		Where("status = ?", string(status)).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func (r *InquiryRepository) toEntities(rows []models.Inquiry) []*entities.Inquiry {
	inquiries := make([]*entities.Inquiry, 0, len(rows))
	for i := range rows {
		inquiries = append(inquiries, r.toEntity(&rows[i]))
	}
	return inquiries
}

func (r *InquiryRepository) toModel(q *entities.Inquiry) *models.Inquiry {
	return &models.Inquiry{
		ID:           q.ID,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Question:     q.Question,
		Answer:       q.Answer,
		Status:       string(q.Status),
		AuditColumns: toAuditModel(q.Audit),
	}
}

func (r *InquiryRepository) toEntity(m *models.Inquiry) *entities.Inquiry {
	return &entities.Inquiry{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Question: m.Question,
		Answer:   m.Answer,
		Status:   entities.InquiryStatus(m.Status),
		Audit:    toAuditEntity(m.AuditColumns),
	}
}
