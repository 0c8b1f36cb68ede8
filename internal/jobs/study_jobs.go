package jobs

import (
	"context"
	"time"

	"studyhub-backend/internal/logger"
)

// StartDueStudies moves APPROVED studies whose start date has arrived into
// IN_PROGRESS.
func (jr *JobRunner) StartDueStudies() {
	jr.runWithRecovery("StartDueStudies", func() {
		ctx := context.Background()

		due, err := jr.store.StudyRepository.ListDueToStart(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list studies due to start", "error", err)
			return
		}

		count := 0
		for _, study := range due {
			if _, err := jr.services.Study.Start(ctx, study.ID); err != nil {
				logger.Error("Failed to start study", "study_id", study.ID, "error", err)
				continue
			}
			logger.Debug("Started study", "study_id", study.ID, "title", study.Title)
			count++
		}

		logger.Info("Started due studies", "count", count, "due", len(due))
	})
}

// CompleteDueStudies moves IN_PROGRESS studies whose end date has passed into
// COMPLETED.
func (jr *JobRunner) CompleteDueStudies() {
	jr.runWithRecovery("CompleteDueStudies", func() {
		ctx := context.Background()

		due, err := jr.store.StudyRepository.ListDueToComplete(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list studies due to complete", "error", err)
			return
		}

		count := 0
		for _, study := range due {
			if _, err := jr.services.Study.Complete(ctx, study.ID); err != nil {
				logger.Error("Failed to complete study", "study_id", study.ID, "error", err)
				continue
			}
			logger.Debug("Completed study", "study_id", study.ID, "title", study.Title)
			count++
		}

		logger.Info("Completed due studies", "count", count, "due", len(due))
	})
}
