package service

import (
	"context"
	"errors"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

type applicationFormService struct {
	formRepo  repository.ApplicationFormRepository
	authority *MembershipAuthority
}

func NewApplicationFormService(formRepo repository.ApplicationFormRepository, authority *MembershipAuthority) ApplicationFormService {
	return &applicationFormService{
		formRepo:  formRepo,
		authority: authority,
	}
}

// CreateForm installs a new active form for the study, deactivating the
// previous active form so at most one is active at a time.
func (s *applicationFormService) CreateForm(ctx context.Context, studyID, requesterID string, questions []domain.ApplicationQuestion) (*domain.ApplicationForm, error) {
	if err := s.authority.ValidateManagementAuthority(ctx, studyID, requesterID); err != nil {
		return nil, err
	}

	prev, err := s.formRepo.GetActiveByStudy(ctx, studyID)
	if err != nil && !errors.Is(err, domain.ErrFormNotFound) {
		return nil, err
	}
	if prev != nil {
		prev.Deactivate()
		if err := s.formRepo.Update(ctx, prev); err != nil {
			return nil, fmt.Errorf("failed to deactivate previous form: %w", err)
		}
	}

	form, err := domain.NewApplicationForm(studyID, "Study Application", "Application form for joining this study", requesterID, questions)
	if err != nil {
		return nil, err
	}
	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to save form: %w", err)
	}
	return form, nil
}

func (s *applicationFormService) UpdateForm(ctx context.Context, formID, requesterID string, questions []domain.ApplicationQuestion) (*domain.ApplicationForm, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := s.authority.ValidateManagementAuthority(ctx, form.StudyID, requesterID); err != nil {
		return nil, err
	}

	form.UpdateQuestions(questions)
	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to save form: %w", err)
	}
	return form, nil
}

func (s *applicationFormService) DeactivateForm(ctx context.Context, formID, requesterID string) error {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return err
	}
	if err := s.authority.ValidateManagementAuthority(ctx, form.StudyID, requesterID); err != nil {
		return err
	}

	form.Deactivate()
	if err := s.formRepo.Update(ctx, form); err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}
	return nil
}

func (s *applicationFormService) GetActiveForm(ctx context.Context, studyID string) (*domain.ApplicationForm, error) {
	return s.formRepo.GetActiveByStudy(ctx, studyID)
}
