package usecases

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/policy"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FollowUpUsecase appends and edits the interaction log of a lead
type FollowUpUsecase struct {
	leadRepo     repositories.LeadRepository
	followUpRepo repositories.FollowUpRepository
}

// NewFollowUpUsecase creates a new follow-up usecase
func NewFollowUpUsecase(leadRepo repositories.LeadRepository, followUpRepo repositories.FollowUpRepository) *FollowUpUsecase {
	return &FollowUpUsecase{leadRepo: leadRepo, followUpRepo: followUpRepo}
}

// Create appends a follow-up to a live lead, owned by actor
func (u *FollowUpUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.CreateFollowUpInput) (*entities.FollowUp, error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return nil, err
	}
	if !input.Channel.Valid() {
		return nil, domainerrors.Validation("channel must be VOICE, WHATSAPP or EMAIL")
	}
	if isBlank(input.Text) {
		return nil, domainerrors.Validation("text is required")
	}

	lead, err := u.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, repoError(err, "lead not found")
	}
	if !lead.IsLive() {
		return nil, domainerrors.NotFound("lead not found")
	}

	f := &entities.FollowUp{
		ID:      utils.GenerateUUIDv7(),
		LeadID:  lead.ID,
		Text:    input.Text,
		Channel: input.Channel,
	}
	f.StampCreated(actor.Ref(), nowUTC())

	if err := u.followUpRepo.Create(ctx, f); err != nil {
		return nil, repoError(err, "follow-up not found")
	}
	return f, nil
}

// Update edits a follow-up. Operators may only edit their own.
func (u *FollowUpUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateFollowUpInput) (*entities.FollowUp, error) {
	f, err := u.loadEditable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(f)
	if !f.Channel.Valid() {
		return nil, domainerrors.Validation("channel must be VOICE, WHATSAPP or EMAIL")
	}
	if isBlank(f.Text) {
		return nil, domainerrors.Validation("text is required")
	}
	f.StampModified(actor.Ref(), nowUTC())

	if err := u.followUpRepo.Update(ctx, f); err != nil {
		return nil, repoError(err, "follow-up not found")
	}
	return f, nil
}

// Delete soft deletes a follow-up under the same ownership rule as Update
func (u *FollowUpUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	f, err := u.loadEditable(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := f.StampDeactivated(actor.Ref(), nowUTC()); err != nil {
		return lifecycleError(err, "follow-up")
	}
	if err := u.followUpRepo.Update(ctx, f); err != nil {
		return repoError(err, "follow-up not found")
	}
	return nil
}

func (u *FollowUpUsecase) loadEditable(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.FollowUp, error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return nil, err
	}
	f, err := u.liveFollowUp(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.OpEditFollowUp, policy.Target{OwnerRef: f.CreatedBy}); err != nil {
		logger.Security(ctx, "follow_up_edit_forbidden", "Follow-up edit forbidden",
			zap.String("actor_id", actor.ID.String()),
			zap.String("follow_up_id", f.ID.String()),
		)
		return nil, err
	}
	return f, nil
}

func (u *FollowUpUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error) {
	return u.liveFollowUp(ctx, id)
}

// liveFollowUp treats a soft deleted follow-up as missing
func (u *FollowUpUsecase) liveFollowUp(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error) {
	f, err := u.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "follow-up not found")
	}
	if !f.IsLive() {
		return nil, domainerrors.NotFound("follow-up not found")
	}
	return f, nil
}

// ListByLead returns the live log of a lead, newest first
func (u *FollowUpUsecase) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.FollowUp, error) {
	followUps, err := u.followUpRepo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return followUps, nil
}

func (u *FollowUpUsecase) List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.FollowUp], error) {
	followUps, total, err := u.followUpRepo.List(ctx, listFilter(page, false))
	if err != nil {
		return utils.PageResult[*entities.FollowUp]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(followUps, total), nil
}
