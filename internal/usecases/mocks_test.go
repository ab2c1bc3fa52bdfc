package usecases_test

import (
	"context"
	"time"

	"captura-leads.backend/internal/domain/entities"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/redis"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Lead, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) ListByStatus(ctx context.Context, status entities.LeadStatus) ([]*entities.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lead), args.Error(1)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.LeadStatus]int64), args.Error(1)
}

// Mock QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, q *entities.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, q *entities.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Question, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) ListActive(ctx context.Context) ([]*entities.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Question), args.Error(1)
}

// Mock AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, a *entities.Answer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAnswerRepository) CreateBatch(ctx context.Context, answers []*entities.Answer) error {
	return m.Called(ctx, answers).Error(0)
}

func (m *MockAnswerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Answer), args.Error(1)
}

func (m *MockAnswerRepository) Update(ctx context.Context, a *entities.Answer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAnswerRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Answer, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Answer), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnswerRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.Answer, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Answer), args.Error(1)
}

// Mock FollowUpRepository
type MockFollowUpRepository struct {
	mock.Mock
}

func (m *MockFollowUpRepository) Create(ctx context.Context, f *entities.FollowUp) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFollowUpRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FollowUp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FollowUp), args.Error(1)
}

func (m *MockFollowUpRepository) Update(ctx context.Context, f *entities.FollowUp) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFollowUpRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.FollowUp, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.FollowUp), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowUpRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]*entities.FollowUp, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FollowUp), args.Error(1)
}

// Mock InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, q *entities.Inquiry) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Update(ctx context.Context, q *entities.Inquiry) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockInquiryRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.Inquiry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Inquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryRepository) ListByStatus(ctx context.Context, status entities.InquiryStatus) ([]*entities.Inquiry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Inquiry), args.Error(1)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	return m.Called(ctx, sessionID, data, expiration).Error(0)
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// Mock SessionRevoker
type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

var (
	adminID    = uuid.MustParse("0190a3a0-0000-7000-8000-000000000001")
	joaoID     = uuid.MustParse("0190a3a0-0000-7000-8000-000000000002")
	mariaID    = uuid.MustParse("0190a3a0-0000-7000-8000-000000000003")
	adminActor = &entities.Actor{ID: adminID, Role: entities.UserRoleAdmin}
	joaoActor  = &entities.Actor{ID: joaoID, Role: entities.UserRoleOperator}
	mariaActor = &entities.Actor{ID: mariaID, Role: entities.UserRoleOperator}
)
