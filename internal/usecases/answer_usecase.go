package usecases

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/policy"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/metrics"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
)

// AnswerUsecase stores qualification answers. Answers copy the question text
// and never reference the question record. Required questions are not checked
// here: the public form enforces them.
type AnswerUsecase struct {
	leadRepo   repositories.LeadRepository
	answerRepo repositories.AnswerRepository
}

// NewAnswerUsecase creates a new answer usecase
func NewAnswerUsecase(leadRepo repositories.LeadRepository, answerRepo repositories.AnswerRepository) *AnswerUsecase {
	return &AnswerUsecase{leadRepo: leadRepo, answerRepo: answerRepo}
}

// Submit bulk inserts answers for a live lead. actor is nil for public submissions.
func (u *AnswerUsecase) Submit(ctx context.Context, actor *entities.Actor, input *entities.SubmitAnswersInput) ([]*entities.Answer, error) {
	if len(input.Answers) == 0 {
		return nil, domainerrors.Validation("at least one answer is required")
	}
	if err := u.requireLiveLead(ctx, input.LeadID); err != nil {
		return nil, err
	}

	answers := buildAnswers(input.LeadID, input.Answers, actor)
	if err := u.answerRepo.CreateBatch(ctx, answers); err != nil {
		return nil, repoError(err, "answer not found")
	}
	metrics.RecordAnswers(len(answers))
	return answers, nil
}

// Create stores a single answer
func (u *AnswerUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.CreateAnswerInput) (*entities.Answer, error) {
	if err := u.requireLiveLead(ctx, input.LeadID); err != nil {
		return nil, err
	}

	answers := buildAnswers(input.LeadID, []entities.AnswerItem{{
		QuestionText: input.QuestionText,
		AnswerText:   input.AnswerText,
	}}, actor)
	if err := u.answerRepo.Create(ctx, answers[0]); err != nil {
		return nil, repoError(err, "answer not found")
	}
	metrics.RecordAnswers(1)
	return answers[0], nil
}

// Get returns one answer
func (u *AnswerUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Answer, error) {
	return u.liveAnswer(ctx, id)
}

// liveAnswer treats a soft deleted answer as missing
func (u *AnswerUsecase) liveAnswer(ctx context.Context, id uuid.UUID) (*entities.Answer, error) {
	answer, err := u.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "answer not found")
	}
	if !answer.IsLive() {
		return nil, domainerrors.NotFound("answer not found")
	}
	return answer, nil
}

// ListByLead returns a lead's live answers in submission order
func (u *AnswerUsecase) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.Answer, error) {
	answers, err := u.answerRepo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return answers, nil
}

// List returns a page of live answers, newest first
func (u *AnswerUsecase) List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Answer], error) {
	answers, total, err := u.answerRepo.List(ctx, listFilter(page, false))
	if err != nil {
		return utils.PageResult[*entities.Answer]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(answers, total), nil
}

// Delete soft deletes an answer
func (u *AnswerUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.Target{}); err != nil {
		return err
	}
	answer, err := u.liveAnswer(ctx, id)
	if err != nil {
		return err
	}
	if err := answer.StampDeactivated(actor.Ref(), nowUTC()); err != nil {
		return lifecycleError(err, "answer")
	}
	if err := u.answerRepo.Update(ctx, answer); err != nil {
		return repoError(err, "answer not found")
	}
	return nil
}

func (u *AnswerUsecase) requireLiveLead(ctx context.Context, leadID uuid.UUID) error {
	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return repoError(err, "lead not found")
	}
	if !lead.IsLive() {
		return domainerrors.NotFound("lead not found")
	}
	return nil
}

// buildAnswers stamps one answer per item, all with the same creation time
func buildAnswers(leadID uuid.UUID, items []entities.AnswerItem, actor *entities.Actor) []*entities.Answer {
	now := nowUTC()
	answers := make([]*entities.Answer, 0, len(items))
	for _, item := range items {
		a := &entities.Answer{
			ID:           utils.GenerateUUIDv7(),
			LeadID:       leadID,
			QuestionText: item.QuestionText,
			AnswerText:   item.AnswerText,
		}
		a.StampCreated(actor.Ref(), now)
		answers = append(answers, a)
	}
	return answers
}
