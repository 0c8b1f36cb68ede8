package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository/postgres"
)

var applicationRows = []string{
	"id", "study_id", "applicant_id", "status", "answers", "rejection_reason",
	"review_note", "reviewed_by", "processed_by", "applied_at", "processed_at", "created_at", "updated_at", "version",
}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app := domain.NewApplication("study-1", "user-1", map[string]string{"q1": "yes"})

		mock.ExpectExec("INSERT INTO applications").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, app)
		assert.NoError(t, err)
	})

	t.Run("UniqueViolationBecomesDuplicate", func(t *testing.T) {
		app := domain.NewApplication("study-1", "user-1", nil)

		mock.ExpectExec("INSERT INTO applications").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, app)
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(applicationRows).
			AddRow("app-1", "study-1", "user-1", "PENDING", []byte(`{"q1":"yes"}`), "",
				"", "", "", now, nil, now, now, 0)
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id =").
			WithArgs("app-1").
			WillReturnRows(rows)

		app, err := repo.GetByID(ctx, "app-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "yes", app.Answers["q1"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id =").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(applicationRows))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

func TestApplicationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("VersionConflict", func(t *testing.T) {
		app := domain.NewApplication("study-1", "user-1", nil)
		app.Version = 1

		mock.ExpectExec("UPDATE applications SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, app)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})
}

func TestApplicationRepository_ExistsPendingByStudyAndApplicant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("study-1", "user-1", domain.ApplicationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsPendingByStudyAndApplicant(ctx, "study-1", "user-1")
	assert.NoError(t, err)
	assert.True(t, exists)
}
