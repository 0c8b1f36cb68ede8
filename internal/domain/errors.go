package domain

import "errors"

var (
	ErrStudyNotFound        = errors.New("study not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrFormNotFound         = errors.New("application form not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidState      = errors.New("operation not allowed in current status")
	ErrAlreadyApproved   = errors.New("study is already approved")
	ErrAlreadyRejected   = errors.New("study is already rejected")
	ErrAlreadyTerminated = errors.New("study is already terminated")
	ErrAlreadyProcessed  = errors.New("application is already processed")

	ErrDuplicateApplication = errors.New("a pending application already exists for this study")
	ErrNotRecruiting        = errors.New("study is not recruiting")
	ErrCapacityExceeded     = errors.New("study capacity exceeded")

	ErrUnauthorized = errors.New("requester does not have authority for this action")
	ErrForbidden    = errors.New("requester identity does not match")

	ErrValidation = errors.New("validation failed")

	// ErrVersionConflict indicates a lost optimistic-concurrency race: another
	// transition on the same entity committed first.
	ErrVersionConflict = errors.New("entity was modified concurrently")
)
