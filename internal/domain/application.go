package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// applicationTransitions: PENDING is the only non-terminal status; an
// application transitions exactly once.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending: {ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusCancelled},
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}

type Application struct {
	ID              string            `json:"id"`
	StudyID         string            `json:"study_id"`
	ApplicantID     string            `json:"applicant_id"`
	Status          ApplicationStatus `json:"status"`
	Answers         map[string]string `json:"answers"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	ReviewNote      string            `json:"review_note,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty"`
	ProcessedBy     string            `json:"processed_by,omitempty"`
	AppliedAt       time.Time         `json:"applied_at"`
	ProcessedAt     *time.Time        `json:"processed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Version         int32             `json:"-"`
}

func NewApplication(studyID, applicantID string, answers map[string]string) *Application {
	now := time.Now()
	if answers == nil {
		answers = map[string]string{}
	}
	return &Application{
		ID:          uuid.NewString(),
		StudyID:     studyID,
		ApplicantID: applicantID,
		Status:      ApplicationStatusPending,
		Answers:     answers,
		AppliedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (a *Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}

// Accept transitions the application to ACCEPTED stamping the reviewer and an
// optional note. A second call fails with ErrAlreadyProcessed.
func (a *Application) Accept(reviewerID, note string) error {
	if !a.Status.CanTransitionTo(ApplicationStatusAccepted) {
		return ErrAlreadyProcessed
	}
	now := time.Now()
	a.Status = ApplicationStatusAccepted
	a.ProcessedAt = &now
	a.ProcessedBy = reviewerID
	a.ReviewedBy = reviewerID
	a.ReviewNote = note
	a.UpdatedAt = now
	return nil
}

func (a *Application) Reject(reviewerID, reason string) error {
	if !a.Status.CanTransitionTo(ApplicationStatusRejected) {
		return ErrAlreadyProcessed
	}
	now := time.Now()
	a.Status = ApplicationStatusRejected
	a.RejectionReason = reason
	a.ProcessedAt = &now
	a.ProcessedBy = reviewerID
	a.ReviewedBy = reviewerID
	a.UpdatedAt = now
	return nil
}

// Cancel is the applicant's own withdrawal of a pending application.
func (a *Application) Cancel() error {
	if !a.Status.CanTransitionTo(ApplicationStatusCancelled) {
		return fmt.Errorf("%w: only a pending application can be cancelled", ErrInvalidState)
	}
	now := time.Now()
	a.Status = ApplicationStatusCancelled
	a.ProcessedAt = &now
	a.UpdatedAt = now
	return nil
}
