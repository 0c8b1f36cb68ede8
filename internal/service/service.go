package service

import (
	"context"

	"studyhub-backend/internal/domain"
)

// ProposeStudyInput carries the proposal payload. Title, Description and
// ProposerID are required; the rest is optional detail.
type ProposeStudyInput struct {
	Title       string
	Description string
	ProposerID  string
	Details     domain.StudyDetails
}

type StudyService interface {
	Propose(ctx context.Context, in ProposeStudyInput) (*domain.Study, error)
	Approve(ctx context.Context, studyID string) (*domain.Study, error)
	Reject(ctx context.Context, studyID string) (*domain.Study, error)
	Start(ctx context.Context, studyID string) (*domain.Study, error)
	Complete(ctx context.Context, studyID string) (*domain.Study, error)
	Terminate(ctx context.Context, studyID string) (*domain.Study, error)
	IncreaseEnrolled(ctx context.Context, studyID string) error
	DecreaseEnrolled(ctx context.Context, studyID string) error
	GetStudy(ctx context.Context, studyID string) (*domain.Study, error)
	ListStudies(ctx context.Context) ([]domain.Study, error)
	ListStudiesPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error)
	ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error)
	ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, studyID, applicantID string, answers map[string]string) (*domain.Application, error)
	Accept(ctx context.Context, applicationID, reviewerID, note string) (*domain.Member, error)
	Reject(ctx context.Context, applicationID, reviewerID, reason string) error
	Cancel(ctx context.Context, applicationID, applicantID string) error
	GetApplication(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
}

// MemberStatistics aggregates per-study membership counts.
type MemberStatistics struct {
	TotalMembers     int32                       `json:"total_members"`
	ActiveMembers    int32                       `json:"active_members"`
	SuspendedMembers int32                       `json:"suspended_members"`
	DormantMembers   int32                       `json:"dormant_members"`
	RoleDistribution map[domain.MemberRole]int32 `json:"role_distribution"`
	WarningCounts    map[int32]int32             `json:"warning_counts"`
}

type MemberService interface {
	ChangeRole(ctx context.Context, memberID, requesterID string, newRole domain.MemberRole) (*domain.Member, error)
	Warn(ctx context.Context, memberID, requesterID, reason string) (*domain.Member, error)
	Remove(ctx context.Context, memberID, requesterID string) error
	Leave(ctx context.Context, studyID, userID string) error
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Member, int32, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Member, error)
	MemberCount(ctx context.Context, studyID string) (int32, error)
	Statistics(ctx context.Context, studyID string) (*MemberStatistics, error)
}

type ApplicationFormService interface {
	CreateForm(ctx context.Context, studyID, requesterID string, questions []domain.ApplicationQuestion) (*domain.ApplicationForm, error)
	UpdateForm(ctx context.Context, formID, requesterID string, questions []domain.ApplicationQuestion) (*domain.ApplicationForm, error)
	DeactivateForm(ctx context.Context, formID, requesterID string) error
	GetActiveForm(ctx context.Context, studyID string) (*domain.ApplicationForm, error)
}

type NotificationService interface {
	List(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

// NotificationSink receives one-way transition events. Implementations must
// never fail the owning operation: delivery errors are logged and swallowed.
type NotificationSink interface {
	StudyProposed(ctx context.Context, study *domain.Study)
	StudyApproved(ctx context.Context, study *domain.Study)
	StudyRejected(ctx context.Context, study *domain.Study)
	StudyTerminated(ctx context.Context, study *domain.Study)
	ApplicationSubmitted(ctx context.Context, app *domain.Application)
	ApplicationAccepted(ctx context.Context, app *domain.Application)
	ApplicationRejected(ctx context.Context, app *domain.Application)
	ApplicationCancelled(ctx context.Context, app *domain.Application)
	MemberJoined(ctx context.Context, member *domain.Member)
	MemberLeft(ctx context.Context, studyID, userID string)
	MemberWarned(ctx context.Context, member *domain.Member, reason string)
}

// EmailService delivers review alerts to the configured operations inbox.
// User-directed events go through in-app notifications; the identity gateway
// owns user contact details.
type EmailService interface {
	SendStudyProposedAlert(ctx context.Context, studyTitle, proposerID string) error
	SendStudyDecisionAlert(ctx context.Context, studyTitle, status string) error
}
