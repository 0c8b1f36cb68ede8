package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository/postgres"
)

var studyRows = []string{
	"id", "title", "description", "proposer_id", "status", "slug", "type", "generation",
	"capacity", "enrolled", "recruit_deadline", "start_date", "end_date", "created_at", "updated_at", "version",
}

func TestStudyRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewStudyRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(studyRows).
			AddRow("study-1", "Go Deep Dive", "desc", "user-1", "APPROVED", "go-deep-dive", "PARTICIPATORY", 3,
				10, 4, nil, nil, nil, now, now, 2)
		mock.ExpectQuery("SELECT (.+) FROM studies WHERE id =").
			WithArgs("study-1").
			WillReturnRows(rows)

		study, err := repo.GetByID(ctx, "study-1")
		assert.NoError(t, err)
		assert.Equal(t, "Go Deep Dive", study.Title)
		assert.Equal(t, domain.StudyStatusApproved, study.Status)
		assert.Equal(t, "go-deep-dive", study.Slug)
		assert.Equal(t, int32(4), study.Enrolled)
		assert.Equal(t, int32(2), study.Version)
	})

	t.Run("NullOptionalColumns", func(t *testing.T) {
		rows := sqlmock.NewRows(studyRows).
			AddRow("study-2", "Minimal", "desc", "user-1", "PENDING", nil, nil, nil,
				nil, 0, nil, nil, nil, now, now, 0)
		mock.ExpectQuery("SELECT (.+) FROM studies WHERE id =").
			WithArgs("study-2").
			WillReturnRows(rows)

		study, err := repo.GetByID(ctx, "study-2")
		assert.NoError(t, err)
		assert.Empty(t, study.Slug)
		assert.Nil(t, study.Capacity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM studies WHERE id =").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(studyRows))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrStudyNotFound)
	})
}

func TestStudyRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewStudyRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		study := &domain.Study{ID: "study-1", Status: domain.StudyStatusApproved, Enrolled: 1, Version: 3}

		mock.ExpectExec("UPDATE studies SET").
			WithArgs(study.ID, study.Status, study.Enrolled, sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, study)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), study.Version)
	})

	t.Run("VersionConflict", func(t *testing.T) {
		study := &domain.Study{ID: "study-1", Status: domain.StudyStatusApproved, Version: 3}

		mock.ExpectExec("UPDATE studies SET").
			WithArgs(study.ID, study.Status, study.Enrolled, sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, study)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
		assert.Equal(t, int32(3), study.Version)
	})
}

func TestStudyRepository_ListDueToStart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewStudyRepository(db)
	ctx := context.Background()
	now := time.Now()
	start := now.AddDate(0, 0, -1)

	rows := sqlmock.NewRows(studyRows).
		AddRow("study-1", "Due", "desc", "user-1", "APPROVED", nil, nil, nil,
			nil, 0, nil, start, nil, now, now, 0)
	mock.ExpectQuery("SELECT (.+) FROM studies WHERE status =").
		WithArgs(domain.StudyStatusApproved, sqlmock.AnyArg()).
		WillReturnRows(rows)

	studies, err := repo.ListDueToStart(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, studies, 1)
	assert.Equal(t, "study-1", studies[0].ID)
}
