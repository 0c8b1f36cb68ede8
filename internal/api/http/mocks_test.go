package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/service"
)

// MockStudyService
type MockStudyService struct {
	mock.Mock
}

func (m *MockStudyService) Propose(ctx context.Context, in service.ProposeStudyInput) (*domain.Study, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) Approve(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) Reject(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) Start(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) Complete(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) Terminate(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) IncreaseEnrolled(ctx context.Context, studyID string) error {
	args := m.Called(ctx, studyID)
	return args.Error(0)
}
func (m *MockStudyService) DecreaseEnrolled(ctx context.Context, studyID string) error {
	args := m.Called(ctx, studyID)
	return args.Error(0)
}
func (m *MockStudyService) GetStudy(ctx context.Context, studyID string) (*domain.Study, error) {
	args := m.Called(ctx, studyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Study), args.Error(1)
}
func (m *MockStudyService) ListStudies(ctx context.Context) ([]domain.Study, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyService) ListStudiesPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Study), args.Get(1).(int32), args.Error(2)
}
func (m *MockStudyService) ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Study), args.Error(1)
}
func (m *MockStudyService) ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error) {
	args := m.Called(ctx, proposerID)
	return args.Get(0).([]domain.Study), args.Error(1)
}

// MockApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, studyID, applicantID string, answers map[string]string) (*domain.Application, error) {
	args := m.Called(ctx, studyID, applicantID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) Accept(ctx context.Context, applicationID, reviewerID, note string) (*domain.Member, error) {
	args := m.Called(ctx, applicationID, reviewerID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockApplicationService) Reject(ctx context.Context, applicationID, reviewerID, reason string) error {
	args := m.Called(ctx, applicationID, reviewerID, reason)
	return args.Error(0)
}
func (m *MockApplicationService) Cancel(ctx context.Context, applicationID, applicantID string) error {
	args := m.Called(ctx, applicationID, applicantID)
	return args.Error(0)
}
func (m *MockApplicationService) GetApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, studyID, offset, limit)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationService) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
