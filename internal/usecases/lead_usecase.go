package usecases

import (
	"context"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/policy"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/metrics"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadUsecase runs the lead funnel. Status is a free label: any status may be
// set from any other.
type LeadUsecase struct {
	uow          repositories.UnitOfWork
	leadRepo     repositories.LeadRepository
	answerRepo   repositories.AnswerRepository
	followUpRepo repositories.FollowUpRepository
}

// NewLeadUsecase creates a new lead usecase
func NewLeadUsecase(
	uow repositories.UnitOfWork,
	leadRepo repositories.LeadRepository,
	answerRepo repositories.AnswerRepository,
	followUpRepo repositories.FollowUpRepository,
) *LeadUsecase {
	return &LeadUsecase{
		uow:          uow,
		leadRepo:     leadRepo,
		answerRepo:   answerRepo,
		followUpRepo: followUpRepo,
	}
}

// Create stores a new lead. A nil actor is a public submission and leaves
// createdBy absent.
func (u *LeadUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.CreateLeadInput) (*entities.Lead, error) {
	lead, err := newLeadFromInput(input, actor)
	if err != nil {
		return nil, err
	}
	if err := u.leadRepo.Create(ctx, lead); err != nil {
		return nil, repoError(err, "lead not found")
	}

	source := metrics.SourcePublic
	if actor != nil {
		source = metrics.SourceStaff
	}
	metrics.RecordLeadCaptured(source)
	logger.Info(ctx, "Lead created", zap.String("lead_id", lead.ID.String()), zap.String("source", source))
	return lead, nil
}

// Capture stores a public form submission, the lead and its answers, in one transaction
func (u *LeadUsecase) Capture(ctx context.Context, input *entities.CaptureInput) (*entities.LeadDetail, error) {
	lead, err := newLeadFromInput(&input.Lead, nil)
	if err != nil {
		return nil, err
	}
	answers := buildAnswers(lead.ID, input.Answers, nil)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.leadRepo.Create(txCtx, lead); err != nil {
			return err
		}
		return u.answerRepo.CreateBatch(txCtx, answers)
	})
	if err != nil {
		return nil, repoError(err, "lead not found")
	}

	metrics.RecordLeadCaptured(metrics.SourceCapture)
	metrics.RecordAnswers(len(answers))
	logger.Info(ctx, "Lead captured", zap.String("lead_id", lead.ID.String()), zap.Int("answers", len(answers)))
	return &entities.LeadDetail{Lead: lead, Answers: answers, FollowUps: []*entities.FollowUp{}}, nil
}

// Update merges patch into the lead
func (u *LeadUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateLeadInput) (*entities.Lead, error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return nil, err
	}
	lead, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "lead not found")
	}

	previous := lead.Status
	input.ApplyTo(lead)
	if !lead.Status.Valid() {
		return nil, domainerrors.Validation("invalid lead status")
	}
	lead.StampModified(actor.Ref(), nowUTC())

	if err := u.leadRepo.Update(ctx, lead); err != nil {
		return nil, repoError(err, "lead not found")
	}
	if lead.Status != previous {
		metrics.RecordLeadStatusChange(string(lead.Status))
	}
	return lead, nil
}

// Deactivate marks the lead inactive
func (u *LeadUsecase) Deactivate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Lead, error) {
	return u.setActive(ctx, actor, policy.OpSetActive, id, false)
}

// Activate restores a deactivated lead
func (u *LeadUsecase) Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Lead, error) {
	return u.setActive(ctx, actor, policy.OpSetActive, id, true)
}

// Delete soft deletes the lead
func (u *LeadUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	_, err := u.setActive(ctx, actor, policy.OpDelete, id, false)
	return err
}

func (u *LeadUsecase) setActive(ctx context.Context, actor *entities.Actor, op policy.Operation, id uuid.UUID, active bool) (*entities.Lead, error) {
	if err := policy.Authorize(actor, op, policy.Target{}); err != nil {
		return nil, err
	}
	lead, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "lead not found")
	}

	if active {
		err = lead.Activate(actor.Ref(), nowUTC())
	} else {
		err = lead.Deactivate(actor.Ref(), nowUTC())
	}
	if err != nil {
		return nil, lifecycleError(err, "lead")
	}

	if err := u.leadRepo.Update(ctx, lead); err != nil {
		return nil, repoError(err, "lead not found")
	}
	return lead, nil
}

// Get returns the lead with its answers and follow-up log
func (u *LeadUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.LeadDetail, error) {
	lead, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "lead not found")
	}
	answers, err := u.answerRepo.ListByLead(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	followUps, err := u.followUpRepo.ListByLead(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.LeadDetail{Lead: lead, Answers: answers, FollowUps: followUps}, nil
}

// List returns a page of leads including inactive ones, newest first
func (u *LeadUsecase) List(ctx context.Context, page utils.PageParams) (utils.PageResult[*entities.Lead], error) {
	leads, total, err := u.leadRepo.List(ctx, listFilter(page, true))
	if err != nil {
		return utils.PageResult[*entities.Lead]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(leads, total), nil
}

// ListByStatus returns the live leads of one funnel segment, newest first
func (u *LeadUsecase) ListByStatus(ctx context.Context, status entities.LeadStatus) ([]*entities.Lead, error) {
	if !status.Valid() {
		return nil, domainerrors.Validation("invalid lead status")
	}
	leads, err := u.leadRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return leads, nil
}

// Stats counts live leads per funnel status. Every status is present.
func (u *LeadUsecase) Stats(ctx context.Context) (*entities.LeadStats, error) {
	counts, err := u.leadRepo.CountByStatus(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	stats := &entities.LeadStats{ByStatus: make(map[entities.LeadStatus]int64, len(entities.LeadStatuses))}
	for _, status := range entities.LeadStatuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}

func newLeadFromInput(input *entities.CreateLeadInput, actor *entities.Actor) (*entities.Lead, error) {
	status := input.Status
	if status == "" {
		status = entities.LeadStatusLead
	}
	if !status.Valid() {
		return nil, domainerrors.Validation("invalid lead status")
	}

	lead := &entities.Lead{
		ID:            utils.GenerateUUIDv7(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Status:        status,
		IsActive:      true,
		TaxID:         input.TaxID,
		Profession:    input.Profession,
		LicenseNumber: input.LicenseNumber,
		Experience:    input.Experience,
	}
	input.Address.ApplyTo(&lead.Address)
	input.WorkAddress.ApplyTo(&lead.WorkAddress)
	lead.StampCreated(actor.Ref(), nowUTC())
	return lead, nil
}
