package repositories

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository implements answer data operations
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(ctx context.Context, answer *entities.Answer) error {
	return translateError(GetDB(ctx, r.db).Create(r.toModel(answer)).Error)
}

// CreateBatch inserts all answers in a single statement
func (r *AnswerRepository) CreateBatch(ctx context.Context, answers []*entities.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	rows := make([]*models.Answer, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, r.toModel(a))
	}
	return translateError(GetDB(ctx, r.db).Create(&rows).Error)
}

func (r *AnswerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Answer, error) {
	var m models.Answer
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update writes only the audit columns. Answer content is immutable.
func (r *AnswerRepository) Update(ctx context.Context, answer *entities.Answer) error {
	return updateRow(GetDB(ctx, r.db), &models.Answer{}, answer.ID, auditUpdates(answer.Audit))
}

func (r *AnswerRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Answer, int64, error) {
	rows, total, err := paginate[models.Answer](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	return r.toEntities(rows), total, nil
}

// ListByLead returns a lead's live answers in submission order
func (r *AnswerRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.Answer, error) {
	var rows []models.Answer
	err := live(GetDB(ctx, r.db)).
		Where("lead_id = ?", leadID).
		Order("created_at ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func (r *AnswerRepository) toEntities(rows []models.Answer) []*entities.Answer {
	answers := make([]*entities.Answer, 0, len(rows))
	for i := range rows {
		answers = append(answers, r.toEntity(&rows[i]))
	}
	return answers
}

func (r *AnswerRepository) toModel(a *entities.Answer) *models.Answer {
	return &models.Answer{
		ID:           a.ID,
		LeadID:       a.LeadID,
		QuestionText: a.QuestionText,
		AnswerText:   a.AnswerText,
		AuditColumns: toAuditModel(a.Audit),
	}
}

func (r *AnswerRepository) toEntity(m *models.Answer) *entities.Answer {
	return &entities.Answer{
		ID:           m.ID,
		LeadID:       m.LeadID,
		QuestionText: m.QuestionText,
		AnswerText:   m.AnswerText,
		Audit:        toAuditEntity(m.AuditColumns),
	}
}
