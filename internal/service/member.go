package service

import (
	"context"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/logger"
	"studyhub-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	studyRepo  repository.StudyRepository
	authority  *MembershipAuthority
	notifier   NotificationSink
}

func NewMemberService(
	memberRepo repository.MemberRepository,
	studyRepo repository.StudyRepository,
	authority *MembershipAuthority,
	notifier NotificationSink,
) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		studyRepo:  studyRepo,
		authority:  authority,
		notifier:   notifier,
	}
}

func (s *memberService) ChangeRole(ctx context.Context, memberID, requesterID string, newRole domain.MemberRole) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err := s.authority.ValidateManagementAuthority(ctx, member.StudyID, requesterID); err != nil {
		return nil, err
	}

	if err := member.ChangeRole(newRole); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}
	return member, nil
}

func (s *memberService) Warn(ctx context.Context, memberID, requesterID, reason string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err := s.authority.ValidateManagementAuthority(ctx, member.StudyID, requesterID); err != nil {
		return nil, err
	}

	member.Warn()
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	s.notifier.MemberWarned(ctx, member, reason)
	return member, nil
}

// Remove withdraws a member on behalf of a manager. The record is kept with
// status WITHDRAWN and a left_at stamp rather than deleted.
func (s *memberService) Remove(ctx context.Context, memberID, requesterID string) error {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if err := s.authority.ValidateManagementAuthority(ctx, member.StudyID, requesterID); err != nil {
		return err
	}

	return s.withdraw(ctx, member)
}

// Leave is self-service: the actor is the subject, so no authority check.
func (s *memberService) Leave(ctx context.Context, studyID, userID string) error {
	member, err := s.memberRepo.GetByStudyAndUser(ctx, studyID, userID)
	if err != nil {
		return err
	}
	return s.withdraw(ctx, member)
}

func (s *memberService) withdraw(ctx context.Context, member *domain.Member) error {
	if err := member.Withdraw(); err != nil {
		return err
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	s.releaseEnrollment(ctx, member.StudyID)
	s.notifier.MemberLeft(ctx, member.StudyID, member.UserID)
	return nil
}

// releaseEnrollment frees the departing member's seat. Failure is logged, not
// surfaced: the withdrawal itself already committed.
func (s *memberService) releaseEnrollment(ctx context.Context, studyID string) {
	study, err := s.studyRepo.GetByID(ctx, studyID)
	if err != nil {
		logger.Warn("Failed to load study for enrollment release", "study_id", studyID, "error", err)
		return
	}
	if err := study.DecreaseEnrolled(); err != nil {
		logger.Warn("Enrollment count out of sync", "study_id", studyID, "error", err)
		return
	}
	if err := s.studyRepo.Update(ctx, study); err != nil {
		logger.Warn("Failed to save study enrollment", "study_id", studyID, "error", err)
	}
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}

func (s *memberService) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Member, int32, error) {
	return s.memberRepo.ListByStudy(ctx, studyID, offset, limit)
}

func (s *memberService) ListByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	return s.memberRepo.ListByUser(ctx, userID)
}

func (s *memberService) MemberCount(ctx context.Context, studyID string) (int32, error) {
	return s.memberRepo.CountByStudy(ctx, studyID)
}

func (s *memberService) Statistics(ctx context.Context, studyID string) (*MemberStatistics, error) {
	total, err := s.memberRepo.CountByStudy(ctx, studyID)
	if err != nil {
		return nil, err
	}
	active, err := s.memberRepo.CountByStudyAndStatus(ctx, studyID, domain.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	suspended, err := s.memberRepo.CountByStudyAndStatus(ctx, studyID, domain.MemberStatusSuspended)
	if err != nil {
		return nil, err
	}
	dormant, err := s.memberRepo.CountByStudyAndStatus(ctx, studyID, domain.MemberStatusDormant)
	if err != nil {
		return nil, err
	}
	roles, err := s.memberRepo.CountByRole(ctx, studyID)
	if err != nil {
		return nil, err
	}
	warnings, err := s.memberRepo.CountByWarnings(ctx, studyID)
	if err != nil {
		return nil, err
	}

	return &MemberStatistics{
		TotalMembers:     total,
		ActiveMembers:    active,
		SuspendedMembers: suspended,
		DormantMembers:   dormant,
		RoleDistribution: roles,
		WarningCounts:    warnings,
	}, nil
}
