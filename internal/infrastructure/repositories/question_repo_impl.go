package repositories

import (
	"context"
	"strings"

	"captura-leads.backend/internal/domain/entities"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionSeparator joins question options in storage
const OptionSeparator = ";"

// QuestionRepository implements qualification question data operations
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	return translateError(GetDB(ctx, r.db).Create(r.toModel(question)).Error)
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	var m models.Question
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *entities.Question) error {
	fields := map[string]interface{}{
		"question_text": question.QuestionText,
		"required":      question.Required,
		"options":       encodeOptions(question.Options),
	}
	return updateRow(GetDB(ctx, r.db), &models.Question{}, question.ID, mergeUpdates(fields, question.Audit))
}

func (r *QuestionRepository) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.Question, int64, error) {
	rows, total, err := paginate[models.Question](func() *gorm.DB { return GetDB(ctx, r.db) }, filter)
	if err != nil {
		return nil, 0, err
	}
	return r.toEntities(rows), total, nil
}

// ListActive returns the questions shown on the public form, oldest first
func (r *QuestionRepository) ListActive(ctx context.Context) ([]*entities.Question, error) {
	var rows []models.Question
	if err := live(GetDB(ctx, r.db)).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

func encodeOptions(options []string) string {
	return strings.Join(options, OptionSeparator)
}

func decodeOptions(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, OptionSeparator)
}

func (r *QuestionRepository) toEntities(rows []models.Question) []*entities.Question {
	questions := make([]*entities.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, r.toEntity(&rows[i]))
	}
	return questions
}

func (r *QuestionRepository) toModel(q *entities.Question) *models.Question {
	return &models.Question{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Required:     q.Required,
		Options:      encodeOptions(q.Options),
		AuditColumns: toAuditModel(q.Audit),
	}
}

func (r *QuestionRepository) toEntity(m *models.Question) *entities.Question {
	return &entities.Question{
		ID:           m.ID,
		QuestionText: m.QuestionText,
		Required:     m.Required,
		Options:      decodeOptions(m.Options),
		Audit:        toAuditEntity(m.AuditColumns),
	}
}
