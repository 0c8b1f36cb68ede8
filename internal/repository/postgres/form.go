package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

const formColumns = `id, study_id, title, description, questions, active, created_by, created_at, updated_at`

type applicationFormRepository struct {
	db *sql.DB
}

func NewApplicationFormRepository(db *sql.DB) repository.ApplicationFormRepository {
	return &applicationFormRepository{db: db}
}

func (r *applicationFormRepository) Create(ctx context.Context, f *domain.ApplicationForm) error {
	questions, err := json.Marshal(f.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}
	query := `INSERT INTO application_forms (id, study_id, title, description, questions, active, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query,
		f.ID, f.StudyID, f.Title, f.Description, questions, f.Active, f.CreatedBy, f.CreatedAt, f.UpdatedAt)
	return err
}

func scanForm(row interface{ Scan(...any) error }) (*domain.ApplicationForm, error) {
	f := &domain.ApplicationForm{}
	var questions []byte
	err := row.Scan(&f.ID, &f.StudyID, &f.Title, &f.Description, &questions, &f.Active, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &f.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode questions: %w", err)
		}
	}
	return f, nil
}

func (r *applicationFormRepository) GetByID(ctx context.Context, id string) (*domain.ApplicationForm, error) {
	query := fmt.Sprintf(`SELECT %s FROM application_forms WHERE id = $1`, formColumns)
	f, err := scanForm(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFormNotFound
	}
	return f, err
}

func (r *applicationFormRepository) GetActiveByStudy(ctx context.Context, studyID string) (*domain.ApplicationForm, error) {
	query := fmt.Sprintf(`SELECT %s FROM application_forms WHERE study_id = $1 AND active`, formColumns)
	f, err := scanForm(r.db.QueryRowContext(ctx, query, studyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFormNotFound
	}
	return f, err
}

func (r *applicationFormRepository) Update(ctx context.Context, f *domain.ApplicationForm) error {
	questions, err := json.Marshal(f.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}
	query := `UPDATE application_forms SET title = $2, description = $3, questions = $4, active = $5, updated_at = $6
	          WHERE id = $1`
	_, err = r.db.ExecContext(ctx, query, f.ID, f.Title, f.Description, questions, f.Active, f.UpdatedAt)
	return err
}
