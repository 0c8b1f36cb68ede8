package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/logger"
	"studyhub-backend/internal/repository"
)

// notifier fans transition events out to in-app notification rows and the
// operations email channel. Every delivery is fire-and-forget: failures are
// logged and never returned to the owning operation.
type notifier struct {
	noteRepo repository.NotificationRepository
	emailSvc EmailService
}

func NewNotifier(noteRepo repository.NotificationRepository, emailSvc EmailService) NotificationSink {
	return &notifier{
		noteRepo: noteRepo,
		emailSvc: emailSvc,
	}
}

func (n *notifier) createNote(ctx context.Context, userID, studyID, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		ID:         uuid.NewString(),
		UserID:     userID,
		StudyID:    studyID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
		CreatedAt:  time.Now(),
	}
	if err := n.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification", "user_id", userID, "study_id", studyID, "error", err)
	}
}

func (n *notifier) StudyProposed(ctx context.Context, study *domain.Study) {
	if err := n.emailSvc.SendStudyProposedAlert(ctx, study.Title, study.ProposerID); err != nil {
		logger.Warn("Failed to send proposal alert", "study_id", study.ID, "error", err)
	}
	n.createNote(ctx, study.ProposerID, study.ID, "Study Proposed",
		fmt.Sprintf("Your study %q was submitted for review", study.Title),
		map[string]string{"type": "STUDY_PROPOSED"})
}

func (n *notifier) StudyApproved(ctx context.Context, study *domain.Study) {
	if err := n.emailSvc.SendStudyDecisionAlert(ctx, study.Title, string(study.Status)); err != nil {
		logger.Warn("Failed to send decision alert", "study_id", study.ID, "error", err)
	}
	n.createNote(ctx, study.ProposerID, study.ID, "Study Approved",
		fmt.Sprintf("Your study %q was approved", study.Title),
		map[string]string{"type": "STUDY_APPROVED"})
}

func (n *notifier) StudyRejected(ctx context.Context, study *domain.Study) {
	if err := n.emailSvc.SendStudyDecisionAlert(ctx, study.Title, string(study.Status)); err != nil {
		logger.Warn("Failed to send decision alert", "study_id", study.ID, "error", err)
	}
	n.createNote(ctx, study.ProposerID, study.ID, "Study Rejected",
		fmt.Sprintf("Your study %q was rejected", study.Title),
		map[string]string{"type": "STUDY_REJECTED"})
}

func (n *notifier) StudyTerminated(ctx context.Context, study *domain.Study) {
	n.createNote(ctx, study.ProposerID, study.ID, "Study Terminated",
		fmt.Sprintf("Your study %q was terminated", study.Title),
		map[string]string{"type": "STUDY_TERMINATED"})
}

func (n *notifier) ApplicationSubmitted(ctx context.Context, app *domain.Application) {
	n.createNote(ctx, app.ApplicantID, app.StudyID, "Application Submitted",
		"Your application was submitted and is awaiting review",
		map[string]string{"type": "APPLICATION_SUBMITTED", "application_id": app.ID})
}

func (n *notifier) ApplicationAccepted(ctx context.Context, app *domain.Application) {
	n.createNote(ctx, app.ApplicantID, app.StudyID, "Application Accepted",
		"Your application was accepted",
		map[string]string{"type": "APPLICATION_ACCEPTED", "application_id": app.ID})
}

func (n *notifier) ApplicationRejected(ctx context.Context, app *domain.Application) {
	message := "Your application was rejected"
	if app.RejectionReason != "" {
		message = fmt.Sprintf("Your application was rejected: %s", app.RejectionReason)
	}
	n.createNote(ctx, app.ApplicantID, app.StudyID, "Application Rejected", message,
		map[string]string{"type": "APPLICATION_REJECTED", "application_id": app.ID})
}

func (n *notifier) ApplicationCancelled(ctx context.Context, app *domain.Application) {
	n.createNote(ctx, app.ApplicantID, app.StudyID, "Application Cancelled",
		"Your application was cancelled",
		map[string]string{"type": "APPLICATION_CANCELLED", "application_id": app.ID})
}

func (n *notifier) MemberJoined(ctx context.Context, member *domain.Member) {
	n.createNote(ctx, member.UserID, member.StudyID, "Joined Study",
		"You are now a member of this study",
		map[string]string{"type": "MEMBER_JOINED", "member_id": member.ID})
}

func (n *notifier) MemberLeft(ctx context.Context, studyID, userID string) {
	n.createNote(ctx, userID, studyID, "Left Study",
		"Your membership in this study has ended",
		map[string]string{"type": "MEMBER_LEFT"})
}

func (n *notifier) MemberWarned(ctx context.Context, member *domain.Member, reason string) {
	message := fmt.Sprintf("You received a warning (%d total)", member.WarningCount)
	if reason != "" {
		message = fmt.Sprintf("You received a warning: %s (%d total)", reason, member.WarningCount)
	}
	if member.Status == domain.MemberStatusSuspended {
		message += ". Your membership is suspended."
	}
	n.createNote(ctx, member.UserID, member.StudyID, "Warning Issued", message,
		map[string]string{"type": "MEMBER_WARNED", "member_id": member.ID})
}
