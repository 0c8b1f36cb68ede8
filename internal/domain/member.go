package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	MemberRoleOwner   MemberRole = "OWNER"
	MemberRoleManager MemberRole = "MANAGER"
	MemberRoleMember  MemberRole = "MEMBER"
	MemberRoleGuest   MemberRole = "GUEST"
)

// memberRoleLevels orders roles by privilege, lower is higher.
var memberRoleLevels = map[MemberRole]int{
	MemberRoleOwner:   1,
	MemberRoleManager: 2,
	MemberRoleMember:  3,
	MemberRoleGuest:   4,
}

func (r MemberRole) Valid() bool {
	_, ok := memberRoleLevels[r]
	return ok
}

func (r MemberRole) IsHigherThan(other MemberRole) bool {
	return memberRoleLevels[r] < memberRoleLevels[other]
}

func (r MemberRole) CanManage() bool {
	return r == MemberRoleOwner || r == MemberRoleManager
}

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
	MemberStatusWithdrawn MemberStatus = "WITHDRAWN"
	MemberStatusDormant   MemberStatus = "DORMANT"
)

// A third warning suspends the member.
const suspensionWarningThreshold = 3

type Member struct {
	ID           string       `json:"id"`
	StudyID      string       `json:"study_id"`
	UserID       string       `json:"user_id"`
	Role         MemberRole   `json:"role"`
	Status       MemberStatus `json:"status"`
	WarningCount int32        `json:"warning_count"`
	JoinedAt     time.Time    `json:"joined_at"`
	LastActiveAt time.Time    `json:"last_active_at"`
	LeftAt       *time.Time   `json:"left_at,omitempty"`
	Version      int32        `json:"-"`
}

func NewMember(studyID, userID string, role MemberRole) *Member {
	now := time.Now()
	return &Member{
		ID:           uuid.NewString(),
		StudyID:      studyID,
		UserID:       userID,
		Role:         role,
		Status:       MemberStatusActive,
		WarningCount: 0,
		JoinedAt:     now,
		LastActiveAt: now,
	}
}

// NewMemberFromApplication materializes the membership created by accepting an
// application. New members always start as plain MEMBERs.
func NewMemberFromApplication(app *Application) *Member {
	return NewMember(app.StudyID, app.ApplicantID, MemberRoleMember)
}

func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

func (m *Member) CanManageMembers() bool {
	return m.Role.CanManage()
}

func (m *Member) IsLeader() bool {
	return m.Role == MemberRoleOwner
}

// Warn increments the warning count; reaching the threshold suspends the
// member as a side effect.
func (m *Member) Warn() {
	m.WarningCount++
	if m.WarningCount >= suspensionWarningThreshold {
		m.Status = MemberStatusSuspended
	}
}

func (m *Member) ChangeRole(newRole MemberRole) error {
	if !newRole.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, newRole)
	}
	m.Role = newRole
	return nil
}

// Withdraw marks the member as left and stamps left_at. Withdrawn members are
// excluded from active counts and listings but the row is kept for auditing.
func (m *Member) Withdraw() error {
	if m.Status == MemberStatusWithdrawn {
		return fmt.Errorf("%w: member has already withdrawn", ErrInvalidState)
	}
	now := time.Now()
	m.Status = MemberStatusWithdrawn
	m.LeftAt = &now
	return nil
}

func (m *Member) Suspend() {
	m.Status = MemberStatusSuspended
}

func (m *Member) Activate() {
	m.Status = MemberStatusActive
	m.WarningCount = 0
}

func (m *Member) TouchLastActive() {
	m.LastActiveAt = time.Now()
}
