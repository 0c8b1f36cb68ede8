package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"

	"github.com/lib/pq"
)

const applicationColumns = `id, study_id, applicant_id, status, answers, rejection_reason,
	review_note, reviewed_by, processed_by, applied_at, processed_at, created_at, updated_at, version`

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	answers, err := json.Marshal(app.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	query := `INSERT INTO applications (id, study_id, applicant_id, status, answers, rejection_reason,
	          review_note, reviewed_by, processed_by, applied_at, processed_at, created_at, updated_at, version)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0)`
	_, err = r.db.ExecContext(ctx, query,
		app.ID, app.StudyID, app.ApplicantID, app.Status, answers, app.RejectionReason,
		app.ReviewNote, app.ReviewedBy, app.ProcessedBy, app.AppliedAt, app.ProcessedAt, app.CreatedAt, app.UpdatedAt)
	// The partial unique index on (study_id, applicant_id) WHERE status =
	// 'PENDING' closes the read-then-write race: the loser of a concurrent
	// apply sees the same error as the read-path duplicate check.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateApplication
	}
	return err
}

func scanApplication(row interface{ Scan(...any) error }) (*domain.Application, error) {
	app := &domain.Application{}
	var answers []byte
	err := row.Scan(&app.ID, &app.StudyID, &app.ApplicantID, &app.Status, &answers, &app.RejectionReason,
		&app.ReviewNote, &app.ReviewedBy, &app.ProcessedBy, &app.AppliedAt, &app.ProcessedAt,
		&app.CreatedAt, &app.UpdatedAt, &app.Version)
	if err != nil {
		return nil, err
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &app.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
	}
	return app, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	return app, err
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	query := `UPDATE applications SET status = $2, rejection_reason = $3, review_note = $4, reviewed_by = $5,
	          processed_by = $6, processed_at = $7, updated_at = $8, version = version + 1
	          WHERE id = $1 AND version = $9`
	res, err := r.db.ExecContext(ctx, query, app.ID, app.Status, app.RejectionReason, app.ReviewNote,
		app.ReviewedBy, app.ProcessedBy, app.ProcessedAt, app.UpdatedAt, app.Version)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVersionConflict
	}
	app.Version++
	return nil
}

func (r *applicationRepository) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Application, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE study_id = $1`, studyID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE study_id = $1 ORDER BY applied_at DESC LIMIT $2 OFFSET $3`, applicationColumns)
	apps, err := r.queryApplications(ctx, query, studyID, limit, offset)
	return apps, total, err
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE applicant_id = $1 ORDER BY applied_at DESC`, applicationColumns)
	return r.queryApplications(ctx, query, applicantID)
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) ExistsPendingByStudyAndApplicant(ctx context.Context, studyID, applicantID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE study_id = $1 AND applicant_id = $2 AND status = $3)`
	err := r.db.QueryRowContext(ctx, query, studyID, applicantID, domain.ApplicationStatusPending).Scan(&exists)
	return exists, err
}

func (r *applicationRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return err
}
