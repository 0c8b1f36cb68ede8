package postgres

import (
	"database/sql"

	"studyhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.StudyRepository
	repository.ApplicationRepository
	repository.MemberRepository
	repository.ApplicationFormRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		StudyRepository:           NewStudyRepository(db),
		ApplicationRepository:     NewApplicationRepository(db),
		MemberRepository:          NewMemberRepository(db),
		ApplicationFormRepository: NewApplicationFormRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
	}
}
