package usecases_test

import (
	"context"
	"errors"
	"testing"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/usecases"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leadFixture struct {
	uc        *usecases.LeadUsecase
	uow       *MockUnitOfWork
	leads     *MockLeadRepository
	answers   *MockAnswerRepository
	followUps *MockFollowUpRepository
}

func newLeadFixture() *leadFixture {
	f := &leadFixture{
		uow:       new(MockUnitOfWork),
		leads:     new(MockLeadRepository),
		answers:   new(MockAnswerRepository),
		followUps: new(MockFollowUpRepository),
	}
	f.uc = usecases.NewLeadUsecase(f.uow, f.leads, f.answers, f.followUps)
	return f
}

func TestLeadUsecase_AnonymousLifecycleRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()

	var stored *entities.Lead
	f.leads.On("Create", ctx, mock.AnythingOfType("*entities.Lead")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entities.Lead)
	}).Return(nil)

	lead, err := f.uc.Create(ctx, nil, &entities.CreateLeadInput{Name: "Ana", Email: "ana@x.com", Phone: "11999999999"})
	require.NoError(t, err)
	assert.Equal(t, entities.LeadStatusLead, lead.Status)
	assert.True(t, lead.IsActive)
	assert.False(t, lead.CreatedBy.Valid)
	assert.NotEqual(t, uuid.Nil, lead.ID)
	require.Same(t, lead, stored)

	f.leads.On("GetByID", ctx, lead.ID).Return(stored, nil)
	f.leads.On("Update", ctx, stored).Return(nil)

	deactivated, err := f.uc.Deactivate(ctx, adminActor, lead.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.True(t, deactivated.DeactivatedAt.Valid)
	assert.Equal(t, adminID.String(), deactivated.DeactivatedBy.String)

	_, err = f.uc.Deactivate(ctx, adminActor, lead.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInactive)

	activated, err := f.uc.Activate(ctx, adminActor, lead.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.False(t, activated.DeactivatedAt.Valid)
	assert.False(t, activated.DeactivatedBy.Valid)

	_, err = f.uc.Activate(ctx, adminActor, lead.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyActive)
}

func TestLeadUsecase_CreateByStaffStampsActor(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()
	f.leads.On("Create", ctx, mock.Anything).Return(nil)

	postal := "01310100"
	lead, err := f.uc.Create(ctx, joaoActor, &entities.CreateLeadInput{
		Name: "Bia", Email: "bia@x.com", Phone: "1199999999", Status: entities.LeadStatusProspect,
		Address: &entities.AddressInput{PostalCode: &postal},
	})
	require.NoError(t, err)
	assert.Equal(t, joaoID.String(), lead.CreatedBy.String)
	assert.Equal(t, entities.LeadStatusProspect, lead.Status)
	assert.Equal(t, "01310100", lead.Address.PostalCode)
}

func TestLeadUsecase_CreateRejectsUnknownStatus(t *testing.T) {
	f := newLeadFixture()
	_, err := f.uc.Create(context.Background(), nil, &entities.CreateLeadInput{Name: "x", Email: "x@x.com", Phone: "11999999999", Status: "CLOSED"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestLeadUsecase_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("lead and answers in one unit of work", func(t *testing.T) {
		f := newLeadFixture()
		f.uow.On("Do", ctx, mock.Anything).Return(nil)
		f.leads.On("Create", ctx, mock.Anything).Return(nil)
		f.answers.On("CreateBatch", ctx, mock.MatchedBy(func(a []*entities.Answer) bool { return len(a) == 2 })).Return(nil)

		detail, err := f.uc.Capture(ctx, &entities.CaptureInput{
			Lead: entities.CreateLeadInput{Name: "Ana", Email: "ana@x.com", Phone: "11999999999"},
			Answers: []entities.AnswerItem{
				{QuestionText: "Area?", AnswerText: "Clinica"},
				{QuestionText: "Comments?", AnswerText: ""},
			},
		})
		require.NoError(t, err)
		require.Len(t, detail.Answers, 2)
		for _, a := range detail.Answers {
			assert.Equal(t, detail.ID, a.LeadID)
			assert.False(t, a.CreatedBy.Valid)
		}
		assert.Equal(t, "Area?", detail.Answers[0].QuestionText)
		assert.NotNil(t, detail.FollowUps)
		f.uow.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("answer failure surfaces", func(t *testing.T) {
		f := newLeadFixture()
		f.uow.On("Do", ctx, mock.Anything).Return(nil)
		f.leads.On("Create", ctx, mock.Anything).Return(nil)
		f.answers.On("CreateBatch", ctx, mock.Anything).Return(errors.New("insert failed"))

		_, err := f.uc.Capture(ctx, &entities.CaptureInput{
			Lead:    entities.CreateLeadInput{Name: "Ana", Email: "ana@x.com", Phone: "11999999999"},
			Answers: []entities.AnswerItem{{QuestionText: "Q", AnswerText: "A"}},
		})
		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.CodeInternalError, appErr.Code)
	})
}

func TestLeadUsecase_UpdateAllowsAnyTransition(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()
	lead := &entities.Lead{ID: uuid.New(), Name: "Ana", Status: entities.LeadStatusWin, IsActive: true}
	f.leads.On("GetByID", ctx, lead.ID).Return(lead, nil)
	f.leads.On("Update", ctx, lead).Return(nil)

	back := entities.LeadStatusLead
	got, err := f.uc.Update(ctx, joaoActor, lead.ID, &entities.UpdateLeadInput{Status: &back})
	require.NoError(t, err)
	assert.Equal(t, entities.LeadStatusLead, got.Status)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, joaoID.String(), got.ModifiedBy.String)

	_, err = f.uc.Update(ctx, nil, lead.ID, &entities.UpdateLeadInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	missing := uuid.New()
	f.leads.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound)
	_, err = f.uc.Update(ctx, adminActor, missing, &entities.UpdateLeadInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLeadUsecase_DeleteAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()
	lead := &entities.Lead{ID: uuid.New(), IsActive: true}
	f.leads.On("GetByID", ctx, lead.ID).Return(lead, nil)
	f.leads.On("Update", ctx, lead).Return(nil)

	assert.ErrorIs(t, f.uc.Delete(ctx, joaoActor, lead.ID), domainerrors.ErrForbidden)
	_, err := f.uc.Deactivate(ctx, joaoActor, lead.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.True(t, lead.IsActive)

	require.NoError(t, f.uc.Delete(ctx, adminActor, lead.ID))
	assert.False(t, lead.IsActive)
	assert.True(t, lead.DeactivatedAt.Valid)
}

func TestLeadUsecase_ListClampsLimit(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()
	items := make([]*entities.Lead, utils.MaxPageLimit)
	f.leads.On("List", ctx, repositories.ListFilter{Offset: 5, Limit: utils.MaxPageLimit, IncludeInactive: true}).Return(items, int64(1000), nil)

	page, err := f.uc.List(ctx, utils.PageParams{Offset: 5, Limit: 10000})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(page.Items), 200)
	assert.Equal(t, int64(1000), page.Total)
}

func TestLeadUsecase_ListByStatusAndStats(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()

	_, err := f.uc.ListByStatus(ctx, "UNKNOWN")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	f.leads.On("ListByStatus", ctx, entities.LeadStatusWin).Return([]*entities.Lead{{ID: uuid.New()}}, nil)
	leads, err := f.uc.ListByStatus(ctx, entities.LeadStatusWin)
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	f.leads.On("CountByStatus", ctx).Return(map[entities.LeadStatus]int64{
		entities.LeadStatusLead: 3,
		entities.LeadStatusWin:  2,
	}, nil)
	stats, err := f.uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Len(t, stats.ByStatus, len(entities.LeadStatuses))
	assert.Equal(t, int64(0), stats.ByStatus[entities.LeadStatusLost])
}

func TestLeadUsecase_GetDetail(t *testing.T) {
	ctx := context.Background()
	f := newLeadFixture()
	lead := &entities.Lead{ID: uuid.New()}
	f.leads.On("GetByID", ctx, lead.ID).Return(lead, nil)
	f.answers.On("ListByLead", ctx, lead.ID).Return([]*entities.Answer{{ID: uuid.New()}}, nil)
	f.followUps.On("ListByLead", ctx, lead.ID).Return([]*entities.FollowUp{}, nil)

	detail, err := f.uc.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Same(t, lead, detail.Lead)
	assert.Len(t, detail.Answers, 1)
	assert.Empty(t, detail.FollowUps)
}
