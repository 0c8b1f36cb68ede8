package service

import (
	"context"
	"errors"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

// MembershipAuthority answers whether a requester holds sufficient role for a
// privileged membership action on a study. It holds no state beyond reading
// member records.
type MembershipAuthority struct {
	memberRepo repository.MemberRepository
}

func NewMembershipAuthority(memberRepo repository.MemberRepository) *MembershipAuthority {
	return &MembershipAuthority{memberRepo: memberRepo}
}

func (a *MembershipAuthority) CanManageMembers(ctx context.Context, studyID, userID string) (bool, error) {
	member, err := a.memberRepo.GetByStudyAndUser(ctx, studyID, userID)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member.CanManageMembers(), nil
}

// ValidateManagementAuthority fails with ErrUnauthorized unless the requester
// is an OWNER or MANAGER of the study.
func (a *MembershipAuthority) ValidateManagementAuthority(ctx context.Context, studyID, requesterID string) error {
	ok, err := a.CanManageMembers(ctx, studyID, requesterID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %s cannot manage members of study %s", domain.ErrUnauthorized, requesterID, studyID)
	}
	return nil
}

// ValidateLeaderAuthority fails with ErrUnauthorized unless the requester is
// the study's OWNER.
func (a *MembershipAuthority) ValidateLeaderAuthority(ctx context.Context, studyID, requesterID string) error {
	member, err := a.memberRepo.GetByStudyAndUser(ctx, studyID, requesterID)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return fmt.Errorf("%w: requester is not a member of study %s", domain.ErrUnauthorized, studyID)
	}
	if err != nil {
		return err
	}
	if !member.IsLeader() {
		return fmt.Errorf("%w: only the study owner can perform this action", domain.ErrUnauthorized)
	}
	return nil
}
