package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int32Ptr(v int32) *int32 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestNewStudy(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		study, err := NewStudy("Go Deep Dive", "Weekly reading group", "user-1", StudyDetails{})
		assert.NoError(t, err)
		assert.Equal(t, StudyStatusPending, study.Status)
		assert.Equal(t, int32(0), study.Enrolled)
		assert.NotEmpty(t, study.ID)
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		study, err := NewStudy("  Go Deep Dive  ", "  desc  ", "user-1", StudyDetails{})
		assert.NoError(t, err)
		assert.Equal(t, "Go Deep Dive", study.Title)
		assert.Equal(t, "desc", study.Description)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		_, err := NewStudy("   ", "desc", "user-1", StudyDetails{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("TitleTooLong", func(t *testing.T) {
		long := make([]rune, 101)
		for i := range long {
			long[i] = 'a'
		}
		_, err := NewStudy(string(long), "desc", "user-1", StudyDetails{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("MissingProposer", func(t *testing.T) {
		_, err := NewStudy("title", "desc", "", StudyDetails{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("CapacityBounds", func(t *testing.T) {
		_, err := NewStudy("title", "desc", "user-1", StudyDetails{Capacity: int32Ptr(0)})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = NewStudy("title", "desc", "user-1", StudyDetails{Capacity: int32Ptr(101)})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = NewStudy("title", "desc", "user-1", StudyDetails{Capacity: int32Ptr(100)})
		assert.NoError(t, err)
	})

	t.Run("StartAfterEnd", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		_, err := NewStudy("title", "desc", "user-1", StudyDetails{
			StartDate: timePtr(start),
			EndDate:   timePtr(end),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("DeadlineAfterStart", func(t *testing.T) {
		deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		_, err := NewStudy("title", "desc", "user-1", StudyDetails{
			RecruitDeadline: timePtr(deadline),
			StartDate:       timePtr(start),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStudyTransitions(t *testing.T) {
	t.Run("FullLifecycle", func(t *testing.T) {
		study := &Study{Status: StudyStatusPending}
		assert.NoError(t, study.Approve())
		assert.Equal(t, StudyStatusApproved, study.Status)
		assert.NoError(t, study.Start())
		assert.Equal(t, StudyStatusInProgress, study.Status)
		assert.NoError(t, study.Complete())
		assert.Equal(t, StudyStatusCompleted, study.Status)
	})

	t.Run("DoubleApprove", func(t *testing.T) {
		study := &Study{Status: StudyStatusApproved}
		assert.ErrorIs(t, study.Approve(), ErrAlreadyApproved)
	})

	t.Run("DoubleReject", func(t *testing.T) {
		study := &Study{Status: StudyStatusRejected}
		assert.ErrorIs(t, study.Reject(), ErrAlreadyRejected)
	})

	t.Run("DoubleTerminate", func(t *testing.T) {
		study := &Study{Status: StudyStatusTerminated}
		assert.ErrorIs(t, study.Terminate(), ErrAlreadyTerminated)
	})

	t.Run("ApproveAfterReject", func(t *testing.T) {
		study := &Study{Status: StudyStatusRejected}
		assert.ErrorIs(t, study.Approve(), ErrInvalidState)
	})

	t.Run("TerminateAfterComplete", func(t *testing.T) {
		study := &Study{Status: StudyStatusCompleted}
		assert.ErrorIs(t, study.Terminate(), ErrInvalidState)
	})

	t.Run("StartFromPending", func(t *testing.T) {
		study := &Study{Status: StudyStatusPending}
		assert.ErrorIs(t, study.Start(), ErrInvalidState)
	})

	t.Run("TerminateFromAnyNonTerminal", func(t *testing.T) {
		for _, status := range []StudyStatus{StudyStatusPending, StudyStatusApproved, StudyStatusInProgress} {
			study := &Study{Status: status}
			assert.NoError(t, study.Terminate(), "from %s", status)
		}
	})
}

func TestStudyStatusTable(t *testing.T) {
	assert.True(t, StudyStatusRejected.IsTerminal())
	assert.True(t, StudyStatusCompleted.IsTerminal())
	assert.True(t, StudyStatusTerminated.IsTerminal())
	assert.False(t, StudyStatusPending.IsTerminal())
	assert.False(t, StudyStatusApproved.CanTransitionTo(StudyStatusPending))
}

func TestStudyEnrollment(t *testing.T) {
	t.Run("CapacityEnforced", func(t *testing.T) {
		study := &Study{Status: StudyStatusApproved, Capacity: int32Ptr(1)}
		assert.NoError(t, study.IncreaseEnrolled())
		assert.ErrorIs(t, study.IncreaseEnrolled(), ErrCapacityExceeded)
		assert.True(t, study.IsFull())
	})

	t.Run("UnlimitedWithoutCapacity", func(t *testing.T) {
		study := &Study{Status: StudyStatusApproved}
		for i := 0; i < 150; i++ {
			assert.NoError(t, study.IncreaseEnrolled())
		}
	})

	t.Run("DecreaseBelowZero", func(t *testing.T) {
		study := &Study{}
		assert.ErrorIs(t, study.DecreaseEnrolled(), ErrInvalidState)
	})
}

func TestStudyIsRecruiting(t *testing.T) {
	t.Run("ApprovedOpen", func(t *testing.T) {
		study := &Study{Status: StudyStatusApproved}
		assert.True(t, study.IsRecruiting())
	})

	t.Run("PendingNotRecruiting", func(t *testing.T) {
		study := &Study{Status: StudyStatusPending}
		assert.False(t, study.IsRecruiting())
	})

	t.Run("DeadlinePassed", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -7)
		study := &Study{Status: StudyStatusApproved, RecruitDeadline: &past}
		assert.False(t, study.IsRecruiting())
	})

	t.Run("Full", func(t *testing.T) {
		study := &Study{Status: StudyStatusApproved, Capacity: int32Ptr(2), Enrolled: 2}
		assert.False(t, study.IsRecruiting())
	})
}
