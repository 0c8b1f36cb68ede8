package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type StudyStatus string

const (
	StudyStatusPending    StudyStatus = "PENDING"
	StudyStatusApproved   StudyStatus = "APPROVED"
	StudyStatusRejected   StudyStatus = "REJECTED"
	StudyStatusInProgress StudyStatus = "IN_PROGRESS"
	StudyStatusCompleted  StudyStatus = "COMPLETED"
	StudyStatusTerminated StudyStatus = "TERMINATED"
)

// studyTransitions is the closed transition table for the study lifecycle.
// REJECTED, COMPLETED and TERMINATED have no outgoing transitions.
var studyTransitions = map[StudyStatus][]StudyStatus{
	StudyStatusPending:    {StudyStatusApproved, StudyStatusRejected, StudyStatusTerminated},
	StudyStatusApproved:   {StudyStatusInProgress, StudyStatusTerminated},
	StudyStatusInProgress: {StudyStatusCompleted, StudyStatusTerminated},
}

// CanTransitionTo reports whether the transition table permits moving to next.
func (s StudyStatus) CanTransitionTo(next StudyStatus) bool {
	for _, allowed := range studyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s StudyStatus) IsTerminal() bool {
	return len(studyTransitions[s]) == 0
}

type StudyType string

const (
	StudyTypeParticipatory StudyType = "PARTICIPATORY"
	StudyTypeEducational   StudyType = "EDUCATIONAL"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
	maxCapacity          = 100
)

type Study struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ProposerID      string      `json:"proposer_id"`
	Status          StudyStatus `json:"status"`
	Slug            string      `json:"slug,omitempty"`
	Type            StudyType   `json:"type,omitempty"`
	Generation      int32       `json:"generation,omitempty"`
	Capacity        *int32      `json:"capacity,omitempty"`
	Enrolled        int32       `json:"enrolled"`
	RecruitDeadline *time.Time  `json:"recruit_deadline,omitempty"`
	StartDate       *time.Time  `json:"start_date,omitempty"`
	EndDate         *time.Time  `json:"end_date,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Version         int32       `json:"-"`
}

// StudyDetails carries the optional proposal attributes beyond the required
// title/description/proposer triple.
type StudyDetails struct {
	Slug            string
	Type            StudyType
	Generation      int32
	Capacity        *int32
	RecruitDeadline *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
}

// NewStudy validates the proposal input and returns a PENDING study.
func NewStudy(title, description, proposerID string, details StudyDetails) (*Study, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	proposerID = strings.TrimSpace(proposerID)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must not exceed %d characters", ErrValidation, maxTitleLength)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if len([]rune(description)) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description must not exceed %d characters", ErrValidation, maxDescriptionLength)
	}
	if proposerID == "" {
		return nil, fmt.Errorf("%w: proposer id is required", ErrValidation)
	}
	if details.Capacity != nil {
		if *details.Capacity < 1 {
			return nil, fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
		}
		if *details.Capacity > maxCapacity {
			return nil, fmt.Errorf("%w: capacity must not exceed %d", ErrValidation, maxCapacity)
		}
	}
	if err := validateDateOrder(details.RecruitDeadline, details.StartDate, details.EndDate); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Study{
		ID:              uuid.NewString(),
		Title:           title,
		Description:     description,
		ProposerID:      proposerID,
		Status:          StudyStatusPending,
		Slug:            details.Slug,
		Type:            details.Type,
		Generation:      details.Generation,
		Capacity:        details.Capacity,
		Enrolled:        0,
		RecruitDeadline: details.RecruitDeadline,
		StartDate:       details.StartDate,
		EndDate:         details.EndDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Ordering invariant: recruitDeadline <= startDate <= endDate for the dates
// that are present.
func validateDateOrder(recruitDeadline, startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return fmt.Errorf("%w: start date must not be after end date", ErrValidation)
	}
	if recruitDeadline != nil && startDate != nil && recruitDeadline.After(*startDate) {
		return fmt.Errorf("%w: recruit deadline must not be after start date", ErrValidation)
	}
	return nil
}

func (s *Study) transition(next StudyStatus) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidState, s.Status, next)
	}
	s.Status = next
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Study) Approve() error {
	if s.Status == StudyStatusApproved {
		return ErrAlreadyApproved
	}
	return s.transition(StudyStatusApproved)
}

func (s *Study) Reject() error {
	if s.Status == StudyStatusRejected {
		return ErrAlreadyRejected
	}
	return s.transition(StudyStatusRejected)
}

func (s *Study) Start() error {
	return s.transition(StudyStatusInProgress)
}

func (s *Study) Complete() error {
	return s.transition(StudyStatusCompleted)
}

func (s *Study) Terminate() error {
	if s.Status == StudyStatusTerminated {
		return ErrAlreadyTerminated
	}
	return s.transition(StudyStatusTerminated)
}

func (s *Study) IncreaseEnrolled() error {
	if s.Capacity != nil && s.Enrolled >= *s.Capacity {
		return ErrCapacityExceeded
	}
	s.Enrolled++
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Study) DecreaseEnrolled() error {
	if s.Enrolled <= 0 {
		return fmt.Errorf("%w: enrolled count is already zero", ErrInvalidState)
	}
	s.Enrolled--
	s.UpdatedAt = time.Now()
	return nil
}

// IsRecruiting reports whether the study currently accepts applications:
// approved, deadline not passed, and not full.
func (s *Study) IsRecruiting() bool {
	if s.Status != StudyStatusApproved {
		return false
	}
	if s.RecruitDeadline != nil {
		today := time.Now().Truncate(24 * time.Hour)
		if s.RecruitDeadline.Before(today) {
			return false
		}
	}
	if s.Capacity != nil && s.Enrolled >= *s.Capacity {
		return false
	}
	return true
}

func (s *Study) IsFull() bool {
	return s.Capacity != nil && s.Enrolled >= *s.Capacity
}

func (s *Study) IsPending() bool {
	return s.Status == StudyStatusPending
}

func (s *Study) IsActive() bool {
	return s.Status == StudyStatusApproved || s.Status == StudyStatusInProgress
}
