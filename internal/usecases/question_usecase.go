package usecases

import (
	"context"
	"strings"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/policy"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
)

// optionSeparator cannot appear inside an option since options are stored joined by it
const optionSeparator = ";"

// QuestionUsecase manages the qualification question set
type QuestionUsecase struct {
	questionRepo repositories.QuestionRepository
}

// NewQuestionUsecase creates a new question usecase
func NewQuestionUsecase(questionRepo repositories.QuestionRepository) *QuestionUsecase {
	return &QuestionUsecase{questionRepo: questionRepo}
}

func (u *QuestionUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.CreateQuestionInput) (*entities.Question, error) {
	if err := policy.Authorize(actor, policy.OpManageQuestions, policy.Target{}); err != nil {
		return nil, err
	}
	if isBlank(input.QuestionText) {
		return nil, domainerrors.Validation("questionText is required")
	}
	options, err := cleanOptions(input.Options)
	if err != nil {
		return nil, err
	}

	q := &entities.Question{
		ID:           utils.GenerateUUIDv7(),
		QuestionText: input.QuestionText,
		Required:     input.Required != nil && *input.Required,
		Options:      options,
	}
	q.StampCreated(actor.Ref(), nowUTC())

	if err := u.questionRepo.Create(ctx, q); err != nil {
		return nil, repoError(err, "question not found")
	}
	return q, nil
}

func (u *QuestionUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateQuestionInput) (*entities.Question, error) {
	if err := policy.Authorize(actor, policy.OpManageQuestions, policy.Target{}); err != nil {
		return nil, err
	}
	q, err := u.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "question not found")
	}

	input.ApplyTo(q)
	if isBlank(q.QuestionText) {
		return nil, domainerrors.Validation("questionText is required")
	}
	if q.Options, err = cleanOptions(q.Options); err != nil {
		return nil, err
	}
	q.StampModified(actor.Ref(), nowUTC())

	if err := u.questionRepo.Update(ctx, q); err != nil {
		return nil, repoError(err, "question not found")
	}
	return q, nil
}

// Delete hides the question from the public form
func (u *QuestionUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	_, err := u.setActive(ctx, actor, policy.OpDelete, id, false)
	return err
}

// Activate shows a deleted question on the public form again
func (u *QuestionUsecase) Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Question, error) {
	return u.setActive(ctx, actor, policy.OpSetActive, id, true)
}

func (u *QuestionUsecase) setActive(ctx context.Context, actor *entities.Actor, op policy.Operation, id uuid.UUID, active bool) (*entities.Question, error) {
	if err := policy.Authorize(actor, op, policy.Target{}); err != nil {
		return nil, err
	}
	q, err := u.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "question not found")
	}

	if active {
		err = q.ClearDeactivation(actor.Ref(), nowUTC())
	} else {
		err = q.StampDeactivated(actor.Ref(), nowUTC())
	}
	if err != nil {
		return nil, lifecycleError(err, "question")
	}

	if err := u.questionRepo.Update(ctx, q); err != nil {
		return nil, repoError(err, "question not found")
	}
	return q, nil
}

func (u *QuestionUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	q, err := u.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "question not found")
	}
	return q, nil
}

// List returns a page of every question, inactive included, newest first
func (u *QuestionUsecase) List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Question], error) {
	questions, total, err := u.questionRepo.List(ctx, listFilter(page, true))
	if err != nil {
		return utils.PageResult[*entities.Question]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(questions, total), nil
}

// ListActive returns the public form questions, oldest first
func (u *QuestionUsecase) ListActive(ctx context.Context) ([]*entities.Question, error) {
	questions, err := u.questionRepo.ListActive(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return questions, nil
}

// cleanOptions trims every option and rejects blank ones or ones holding the separator
func cleanOptions(options []string) ([]string, error) {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return nil, domainerrors.Validation("options must not be blank")
		}
		if strings.Contains(opt, optionSeparator) {
			return nil, domainerrors.Validation("options must not contain ';'")
		}
		out = append(out, opt)
	}
	return out, nil
}
