package service

import (
	"context"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

type studyService struct {
	studyRepo repository.StudyRepository
	notifier  NotificationSink
}

func NewStudyService(studyRepo repository.StudyRepository, notifier NotificationSink) StudyService {
	return &studyService{
		studyRepo: studyRepo,
		notifier:  notifier,
	}
}

func (s *studyService) Propose(ctx context.Context, in ProposeStudyInput) (*domain.Study, error) {
	study, err := domain.NewStudy(in.Title, in.Description, in.ProposerID, in.Details)
	if err != nil {
		return nil, err
	}
	if study.Slug != "" {
		taken, err := s.studyRepo.ExistsBySlug(ctx, study.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("%w: slug %q is already in use", domain.ErrValidation, study.Slug)
		}
	}
	if err := s.studyRepo.Create(ctx, study); err != nil {
		return nil, fmt.Errorf("failed to save study: %w", err)
	}
	s.notifier.StudyProposed(ctx, study)
	return study, nil
}

// transitionStudy loads the study, applies the given transition and persists
// the result under the optimistic version check.
func (s *studyService) transitionStudy(ctx context.Context, studyID string, apply func(*domain.Study) error) (*domain.Study, error) {
	study, err := s.studyRepo.GetByID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	if err := apply(study); err != nil {
		return nil, err
	}
	if err := s.studyRepo.Update(ctx, study); err != nil {
		return nil, fmt.Errorf("failed to save study: %w", err)
	}
	return study, nil
}

func (s *studyService) Approve(ctx context.Context, studyID string) (*domain.Study, error) {
	study, err := s.transitionStudy(ctx, studyID, (*domain.Study).Approve)
	if err != nil {
		return nil, err
	}
	s.notifier.StudyApproved(ctx, study)
	return study, nil
}

func (s *studyService) Reject(ctx context.Context, studyID string) (*domain.Study, error) {
	study, err := s.transitionStudy(ctx, studyID, (*domain.Study).Reject)
	if err != nil {
		return nil, err
	}
	s.notifier.StudyRejected(ctx, study)
	return study, nil
}

func (s *studyService) Start(ctx context.Context, studyID string) (*domain.Study, error) {
	return s.transitionStudy(ctx, studyID, (*domain.Study).Start)
}

func (s *studyService) Complete(ctx context.Context, studyID string) (*domain.Study, error) {
	return s.transitionStudy(ctx, studyID, (*domain.Study).Complete)
}

func (s *studyService) Terminate(ctx context.Context, studyID string) (*domain.Study, error) {
	study, err := s.transitionStudy(ctx, studyID, (*domain.Study).Terminate)
	if err != nil {
		return nil, err
	}
	s.notifier.StudyTerminated(ctx, study)
	return study, nil
}

func (s *studyService) IncreaseEnrolled(ctx context.Context, studyID string) error {
	_, err := s.transitionStudy(ctx, studyID, (*domain.Study).IncreaseEnrolled)
	return err
}

func (s *studyService) DecreaseEnrolled(ctx context.Context, studyID string) error {
	_, err := s.transitionStudy(ctx, studyID, (*domain.Study).DecreaseEnrolled)
	return err
}

func (s *studyService) GetStudy(ctx context.Context, studyID string) (*domain.Study, error) {
	return s.studyRepo.GetByID(ctx, studyID)
}

func (s *studyService) ListStudies(ctx context.Context) ([]domain.Study, error) {
	return s.studyRepo.List(ctx)
}

func (s *studyService) ListStudiesPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error) {
	return s.studyRepo.ListPaged(ctx, offset, limit)
}

func (s *studyService) ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error) {
	return s.studyRepo.ListByStatus(ctx, status)
}

func (s *studyService) ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error) {
	return s.studyRepo.ListByProposer(ctx, proposerID)
}
