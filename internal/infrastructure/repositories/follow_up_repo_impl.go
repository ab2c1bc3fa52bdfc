package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpRepository implements follow-up data operations
type FollowUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new follow-up repository
func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{db: db}
}

func (r *FollowUpRepository) Create(ctx context.Context, followUp *entities.FollowUp) error {
	return translateError(GetDB(ctx, r.db).Create(r.toModel(followUp)).Error)
}

func (r *FollowUpRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error) {
	var m models.FollowUp
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *FollowUpRepository) Update(ctx context.Context, followUp *entities.FollowUp) error {
	fields := map[string]interface{}{
		"text":    followUp.Text,
		"channel": string(followUp.Channel),
	}
	return updateRow(GetDB(ctx, r.db), &models.FollowUp{}, followUp.ID, mergeUpdates(fields, followUp.Audit))
}

func (r *FollowUpRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.FollowUp, int64, error) {
	rows, total, err := paginate[models.FollowUp](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	return r.toEntities(rows), total, nil
}

// ListByLead returns a lead's live follow-ups, newest first
func (r *FollowUpRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.FollowUp, error) {
	var rows []models.FollowUp
	err := live(GetDB(ctx, r.db)).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func (r *FollowUpRepository) toEntities(rows []models.FollowUp) []*entities.FollowUp {
	followUps := make([]*entities.FollowUp, 0, len(rows))
	for i := range rows {
		followUps = append(followUps, r.toEntity(&rows[i]))
	}
	return followUps
}

func (r *FollowUpRepository) toModel(f *entities.FollowUp) *models.FollowUp {
	return &models.FollowUp{
		ID:           f.ID,
		LeadID:       f.LeadID,
		Text:         f.Text,
		Channel:      string(f.Channel),
		AuditColumns: toAuditModel(f.Audit),
	}
}

func (r *FollowUpRepository) toEntity(m *models.FollowUp) *entities.FollowUp {
	return &entities.FollowUp{
		ID:      m.ID,
		LeadID:  m.LeadID,
		Text:    m.Text,
		Channel: entities.Channel(m.Channel),
		Audit:   toAuditEntity(m.AuditColumns),
	}
}
