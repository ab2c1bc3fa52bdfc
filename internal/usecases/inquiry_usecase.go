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
	"github.com/volatiletech/null/v8"
)

// InquiryUsecase handles standalone public questions
type InquiryUsecase struct {
	inquiryRepo repositories.InquiryRepository
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(inquiryRepo repositories.InquiryRepository) *InquiryUsecase {
	return &InquiryUsecase{inquiryRepo: inquiryRepo}
}

// Create stores a public inquiry with status ASKED
func (u *InquiryUsecase) Create(ctx context.Context, input *entities.CreateInquiryInput) (*entities.Inquiry, error) {
	q := &entities.Inquiry{
		ID:       utils.GenerateUUIDv7(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Question: input.Question,
		Status:   entities.InquiryStatusAsked,
	}
	q.StampCreated(null.String{}, nowUTC())

	if err := u.inquiryRepo.Create(ctx, q); err != nil {
		return nil, repoError(err, "inquiry not found")
	}
	metrics.RecordInquiry()
	return q, nil
}

// Update merges patch into the inquiry. Answering an ASKED inquiry marks it ANSWERED.
func (u *InquiryUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateInquiryInput) (*entities.Inquiry, error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, domainerrors.Validation("invalid inquiry status")
	}
	q, err := u.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "inquiry not found")
	}

	input.ApplyTo(q)
	q.StampModified(actor.Ref(), nowUTC())

	if err := u.inquiryRepo.Update(ctx, q); err != nil {
		return nil, repoError(err, "inquiry not found")
	}
	return q, nil
}

// Delete soft deletes an inquiry
func (u *InquiryUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.Target{}); err != nil {
		return err
	}
	q, err := u.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return repoError(err, "inquiry not found")
	}
	if err := q.StampDeactivated(actor.Ref(), nowUTC()); err != nil {
		return lifecycleError(err, "inquiry")
	}
	if err := u.inquiryRepo.Update(ctx, q); err != nil {
		return repoError(err, "inquiry not found")
	}
	return nil
}

func (u *InquiryUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Inquiry, error) {
	q, err := u.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "inquiry not found")
	}
	return q, nil
}

// ListByStatus returns live inquiries with status, newest first
func (u *InquiryUsecase) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	if !status.Valid() {
		return nil, domainerrors.Validation("invalid inquiry status")
	}
	inquiries, err := u.inquiryRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return inquiries, nil
}

// List returns a page of every inquiry, inactive included, newest first
func (u *InquiryUsecase) List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Inquiry], error) {
	inquiries, total, err := u.inquiryRepo.List(ctx, listFilter(page, true))
	if err != nil {
		return utils.PageResult[*entities.Inquiry]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(inquiries, total), nil
}
