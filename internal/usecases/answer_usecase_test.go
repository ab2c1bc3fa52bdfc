package usecases_test

import (
	"context"
	"testing"
	"time"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/usecases"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func TestAnswerUsecase_Submit(t *testing.T) {
	ctx := context.Background()
	leads := new(MockLeadRepository)
	answers := new(MockAnswerRepository)
	uc := usecases.NewAnswerUsecase(leads, answers)

	live := &entities.Lead{ID: uuid.New(), IsActive: true}
	inactive := &entities.Lead{ID: uuid.New()}
	inactive.DeactivatedAt = null.TimeFrom(time.Now())
	missing := uuid.New()

	leads.On("GetByID", ctx, live.ID).Return(live, nil)
	leads.On("GetByID", ctx, inactive.ID).Return(inactive, nil)
	leads.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound)
	answers.On("CreateBatch", ctx, mock.Anything).Return(nil)

	t.Run("copies question text", func(t *testing.T) {
		got, err := uc.Submit(ctx, nil, &entities.SubmitAnswersInput{
			LeadID: live.ID,
			Answers: []entities.AnswerItem{
				{QuestionText: "Area?", AnswerText: "Clinica"},
				{QuestionText: "Tempo?", AnswerText: "5 anos"},
			},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Area?", got[0].QuestionText)
		assert.Equal(t, "5 anos", got[1].AnswerText)
		assert.Equal(t, got[0].CreatedAt, got[1].CreatedAt)
		assert.False(t, got[0].CreatedBy.Valid)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := uc.Submit(ctx, nil, &entities.SubmitAnswersInput{LeadID: live.ID})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("inactive or missing lead", func(t *testing.T) {
		items := []entities.AnswerItem{{QuestionText: "Q"}}
		_, err := uc.Submit(ctx, nil, &entities.SubmitAnswersInput{LeadID: inactive.ID, Answers: items})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)

		_, err = uc.Submit(ctx, nil, &entities.SubmitAnswersInput{LeadID: missing, Answers: items})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	answers.AssertNumberOfCalls(t, "CreateBatch", 1)
}

func TestAnswerUsecase_CreateByStaff(t *testing.T) {
	ctx := context.Background()
	leads := new(MockLeadRepository)
	answers := new(MockAnswerRepository)
	uc := usecases.NewAnswerUsecase(leads, answers)

	lead := &entities.Lead{ID: uuid.New(), IsActive: true}
	leads.On("GetByID", ctx, lead.ID).Return(lead, nil)
	answers.On("Create", ctx, mock.AnythingOfType("*entities.Answer")).Return(nil)

	a, err := uc.Create(ctx, joaoActor, &entities.CreateAnswerInput{LeadID: lead.ID, QuestionText: "Q", AnswerText: "A"})
	require.NoError(t, err)
	assert.Equal(t, lead.ID, a.LeadID)
	assert.Equal(t, joaoID.String(), a.CreatedBy.String)
}

func TestAnswerUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	leads := new(MockLeadRepository)
	answers := new(MockAnswerRepository)
	uc := usecases.NewAnswerUsecase(leads, answers)

	a := &entities.Answer{ID: uuid.New()}
	answers.On("GetByID", ctx, a.ID).Return(a, nil)
	answers.On("Update", ctx, a).Return(nil)

	assert.ErrorIs(t, uc.Delete(ctx, mariaActor, a.ID), domainerrors.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, adminActor, a.ID))
	assert.False(t, a.IsLive())
	assert.Equal(t, adminID.String(), a.DeactivatedBy.String)

	_, err := uc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, adminActor, a.ID), domainerrors.ErrNotFound)
	answers.AssertNumberOfCalls(t, "Update", 1)
}

func TestAnswerUsecase_ListLiveOnly(t *testing.T) {
	ctx := context.Background()
	answers := new(MockAnswerRepository)
	uc := usecases.NewAnswerUsecase(new(MockLeadRepository), answers)

	answers.On("List", ctx, repositories.ListFilter{Offset: 0, Limit: 20, IncludeInactive: false}).Return([]*entities.Answer(nil), int64(0), nil)
	page, err := uc.List(ctx, utils.PageParams{Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}
