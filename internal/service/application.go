package service

import (
	"context"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

type applicationService struct {
	appRepo    repository.ApplicationRepository
	studyRepo  repository.StudyRepository
	memberRepo repository.MemberRepository
	authority  *MembershipAuthority
	notifier   NotificationSink
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	studyRepo repository.StudyRepository,
	memberRepo repository.MemberRepository,
	authority *MembershipAuthority,
	notifier NotificationSink,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		studyRepo:  studyRepo,
		memberRepo: memberRepo,
		authority:  authority,
		notifier:   notifier,
	}
}

func (s *applicationService) Apply(ctx context.Context, studyID, applicantID string, answers map[string]string) (*domain.Application, error) {
	study, err := s.studyRepo.GetByID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	if !study.IsRecruiting() {
		return nil, domain.ErrNotRecruiting
	}

	exists, err := s.appRepo.ExistsPendingByStudyAndApplicant(ctx, studyID, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending applications: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	app := domain.NewApplication(studyID, applicantID, answers)
	// Create can still fail with ErrDuplicateApplication: the storage-level
	// uniqueness constraint decides concurrent applies.
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.notifier.ApplicationSubmitted(ctx, app)
	return app, nil
}

func (s *applicationService) Accept(ctx context.Context, applicationID, reviewerID, note string) (*domain.Member, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.authority.ValidateManagementAuthority(ctx, app.StudyID, reviewerID); err != nil {
		return nil, err
	}

	if err := app.Accept(reviewerID, note); err != nil {
		return nil, err
	}

	study, err := s.studyRepo.GetByID(ctx, app.StudyID)
	if err != nil {
		return nil, err
	}
	if err := study.IncreaseEnrolled(); err != nil {
		return nil, err
	}

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	if err := s.studyRepo.Update(ctx, study); err != nil {
		return nil, fmt.Errorf("failed to save study enrollment: %w", err)
	}

	member := domain.NewMemberFromApplication(app)
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.notifier.ApplicationAccepted(ctx, app)
	s.notifier.MemberJoined(ctx, member)
	return member, nil
}

func (s *applicationService) Reject(ctx context.Context, applicationID, reviewerID, reason string) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if err := s.authority.ValidateManagementAuthority(ctx, app.StudyID, reviewerID); err != nil {
		return err
	}

	if err := app.Reject(reviewerID, reason); err != nil {
		return err
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}

	s.notifier.ApplicationRejected(ctx, app)
	return nil
}

func (s *applicationService) Cancel(ctx context.Context, applicationID, applicantID string) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if app.ApplicantID != applicantID {
		return fmt.Errorf("%w: only the applicant can cancel their application", domain.ErrForbidden)
	}

	if err := app.Cancel(); err != nil {
		return err
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}

	s.notifier.ApplicationCancelled(ctx, app)
	return nil
}

func (s *applicationService) GetApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	return s.appRepo.GetByID(ctx, applicationID)
}

func (s *applicationService) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error) {
	return s.appRepo.ListByStudy(ctx, studyID, offset, limit)
}

func (s *applicationService) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return s.appRepo.ListByApplicant(ctx, applicantID)
}
