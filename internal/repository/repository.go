package repository

import (
	"context"
	"time"

	"studyhub-backend/internal/domain"
)

type StudyRepository interface {
	Create(ctx context.Context, study *domain.Study) error
	GetByID(ctx context.Context, id string) (*domain.Study, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Study, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Update persists a transition with an optimistic version check; it
	// returns domain.ErrVersionConflict when another write won the race.
	Update(ctx context.Context, study *domain.Study) error
	List(ctx context.Context) ([]domain.Study, error)
	ListPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error)
	ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error)
	ListByType(ctx context.Context, studyType domain.StudyType) ([]domain.Study, error)
	ListByGeneration(ctx context.Context, generation int32) ([]domain.Study, error)
	ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error)
	// ListDueToStart returns APPROVED studies whose start date has arrived.
	ListDueToStart(ctx context.Context, asOf time.Time) ([]domain.Study, error)
	// ListDueToComplete returns IN_PROGRESS studies whose end date has passed.
	ListDueToComplete(ctx context.Context, asOf time.Time) ([]domain.Study, error)
	DeleteByID(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	// Create returns domain.ErrDuplicateApplication when a PENDING
	// application already exists for the same (study, applicant) pair; the
	// storage layer enforces this with a uniqueness constraint.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ExistsPendingByStudyAndApplicant(ctx context.Context, studyID, applicantID string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByStudyAndUser(ctx context.Context, studyID, userID string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	// ListByStudy returns non-withdrawn members only.
	ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Member, int32, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Member, error)
	CountByStudy(ctx context.Context, studyID string) (int32, error)
	CountByStudyAndStatus(ctx context.Context, studyID string, status domain.MemberStatus) (int32, error)
	CountByRole(ctx context.Context, studyID string) (map[domain.MemberRole]int32, error)
	CountByWarnings(ctx context.Context, studyID string) (map[int32]int32, error)
	DeleteByID(ctx context.Context, id string) error
}

type ApplicationFormRepository interface {
	Create(ctx context.Context, form *domain.ApplicationForm) error
	GetByID(ctx context.Context, id string) (*domain.ApplicationForm, error)
	GetActiveByStudy(ctx context.Context, studyID string) (*domain.ApplicationForm, error)
	Update(ctx context.Context, form *domain.ApplicationForm) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
