package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"studyhub-backend/internal/domain"
)

// MockStudyRepo
type MockStudyRepo struct {
	mock.Mock
}

func (m *MockStudyRepo) Create(ctx context.Context, study *domain.Study) error {
	args := m.Called(ctx, study)
	return args.Error(0)
}
func (m *MockStudyRepo) GetByID(ctx context.Context, id string) (*domain.Study, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Study, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}
func (m *MockStudyRepo) Update(ctx context.Context, study *domain.Study) error {
	args := m.Called(ctx, study)
	return args.Error(0)
}
func (m *MockStudyRepo) List(ctx context.Context) ([]domain.Study, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Study), args.Get(1).(int32), args.Error(2)
}
func (m *MockStudyRepo) ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListByType(ctx context.Context, studyType domain.StudyType) ([]domain.Study, error) {
	args := m.Called(ctx, studyType)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListByGeneration(ctx context.Context, generation int32) ([]domain.Study, error) {
	args := m.Called(ctx, generation)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error) {
	args := m.Called(ctx, proposerID)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListDueToStart(ctx context.Context, asOf time.Time) ([]domain.Study, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) ListDueToComplete(ctx context.Context, asOf time.Time) ([]domain.Study, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, studyID, offset, limit)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ExistsPendingByStudyAndApplicant(ctx context.Context, studyID, applicantID string) (bool, error) {
	args := m.Called(ctx, studyID, applicantID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByStudyAndUser(ctx context.Context, studyID, userID string) (*domain.Member, error) {
	args := m.Called(ctx, studyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Member, int32, error) {
	args := m.Called(ctx, studyID, offset, limit)
	return args.Get(0).([]domain.Member), args.Get(1).(int32), args.Error(2)
}
func (m *MockMemberRepo) ListByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) CountByStudy(ctx context.Context, studyID string) (int32, error) {
	args := m.Called(ctx, studyID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMemberRepo) CountByStudyAndStatus(ctx context.Context, studyID string, status domain.MemberStatus) (int32, error) {
	args := m.Called(ctx, studyID, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMemberRepo) CountByRole(ctx context.Context, studyID string) (map[domain.MemberRole]int32, error) {
	args := m.Called(ctx, studyID)
	return args.Get(0).(map[domain.MemberRole]int32), args.Error(1)
}
func (m *MockMemberRepo) CountByWarnings(ctx context.Context, studyID string) (map[int32]int32, error) {
	args := m.Called(ctx, studyID)
	return args.Get(0).(map[int32]int32), args.Error(1)
}
func (m *MockMemberRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFormRepo
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) Create(ctx context.Context, form *domain.ApplicationForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}
func (m *MockFormRepo) GetByID(ctx context.Context, id string) (*domain.ApplicationForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationForm), args.Error(1)
}
func (m *MockFormRepo) GetActiveByStudy(ctx context.Context, studyID string) (*domain.ApplicationForm, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationForm), args.Error(1)
}
func (m *MockFormRepo) Update(ctx context.Context, form *domain.ApplicationForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockNotifier records transition events without side effects.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) StudyProposed(ctx context.Context, study *domain.Study)   { m.Called(ctx, study) }
func (m *MockNotifier) StudyApproved(ctx context.Context, study *domain.Study)   { m.Called(ctx, study) }
func (m *MockNotifier) StudyRejected(ctx context.Context, study *domain.Study)   { m.Called(ctx, study) }
func (m *MockNotifier) StudyTerminated(ctx context.Context, study *domain.Study) { m.Called(ctx, study) }
func (m *MockNotifier) ApplicationSubmitted(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) ApplicationAccepted(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) ApplicationRejected(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) ApplicationCancelled(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) MemberJoined(ctx context.Context, member *domain.Member) {
	m.Called(ctx, member)
}
func (m *MockNotifier) MemberLeft(ctx context.Context, studyID, userID string) {
	m.Called(ctx, studyID, userID)
}
func (m *MockNotifier) MemberWarned(ctx context.Context, member *domain.Member, reason string) {
	m.Called(ctx, member, reason)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendStudyProposedAlert(ctx context.Context, studyTitle, proposerID string) error {
	args := m.Called(ctx, studyTitle, proposerID)
	return args.Error(0)
}
func (m *MockEmailService) SendStudyDecisionAlert(ctx context.Context, studyTitle, status string) error {
	args := m.Called(ctx, studyTitle, status)
	return args.Error(0)
}
