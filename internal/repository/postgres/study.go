package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

const studyColumns = `id, title, description, proposer_id, status, slug, type, generation,
	capacity, enrolled, recruit_deadline, start_date, end_date, created_at, updated_at, version`

type studyRepository struct {
	db *sql.DB
}

func NewStudyRepository(db *sql.DB) repository.StudyRepository {
	return &studyRepository{db: db}
}

func (r *studyRepository) Create(ctx context.Context, s *domain.Study) error {
	query := `INSERT INTO studies (id, title, description, proposer_id, status, slug, type, generation,
	          capacity, enrolled, recruit_deadline, start_date, end_date, created_at, updated_at, version)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, 0)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Title, s.Description, s.ProposerID, s.Status, s.Slug, string(s.Type), s.Generation,
		s.Capacity, s.Enrolled, s.RecruitDeadline, s.StartDate, s.EndDate, s.CreatedAt, s.UpdatedAt)
	return err
}

func scanStudy(row interface{ Scan(...any) error }) (*domain.Study, error) {
	s := &domain.Study{}
	var slug, studyType sql.NullString
	var generation sql.NullInt32
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.ProposerID, &s.Status, &slug, &studyType, &generation,
		&s.Capacity, &s.Enrolled, &s.RecruitDeadline, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt, &s.Version)
	if err != nil {
		return nil, err
	}
	s.Slug = slug.String
	s.Type = domain.StudyType(studyType.String)
	s.Generation = generation.Int32
	return s, nil
}

func (r *studyRepository) GetByID(ctx context.Context, id string) (*domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE id = $1`, studyColumns)
	s, err := scanStudy(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStudyNotFound
	}
	return s, err
}

func (r *studyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE slug = $1`, studyColumns)
	s, err := scanStudy(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStudyNotFound
	}
	return s, err
}

func (r *studyRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM studies WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *studyRepository) Update(ctx context.Context, s *domain.Study) error {
	query := `UPDATE studies SET status = $2, enrolled = $3, updated_at = $4, version = version + 1
	          WHERE id = $1 AND version = $5`
	res, err := r.db.ExecContext(ctx, query, s.ID, s.Status, s.Enrolled, s.UpdatedAt, s.Version)
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
	s.Version++
	return nil
}

func (r *studyRepository) queryStudies(ctx context.Context, query string, args ...any) ([]domain.Study, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studies []domain.Study
	for rows.Next() {
		s, err := scanStudy(rows)
		if err != nil {
			return nil, err
		}
		studies = append(studies, *s)
	}
	return studies, rows.Err()
}

func (r *studyRepository) List(ctx context.Context) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies ORDER BY created_at DESC`, studyColumns)
	return r.queryStudies(ctx, query)
}

func (r *studyRepository) ListPaged(ctx context.Context, offset, limit int32) ([]domain.Study, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM studies`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`SELECT %s FROM studies ORDER BY created_at DESC LIMIT $1 OFFSET $2`, studyColumns)
	studies, err := r.queryStudies(ctx, query, limit, offset)
	return studies, total, err
}

func (r *studyRepository) ListByStatus(ctx context.Context, status domain.StudyStatus) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE status = $1 ORDER BY created_at DESC`, studyColumns)
	return r.queryStudies(ctx, query, status)
}

func (r *studyRepository) ListByType(ctx context.Context, studyType domain.StudyType) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE type = $1 ORDER BY created_at DESC`, studyColumns)
	return r.queryStudies(ctx, query, studyType)
}

func (r *studyRepository) ListByGeneration(ctx context.Context, generation int32) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE generation = $1 ORDER BY created_at DESC`, studyColumns)
	return r.queryStudies(ctx, query, generation)
}

func (r *studyRepository) ListByProposer(ctx context.Context, proposerID string) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE proposer_id = $1 ORDER BY created_at DESC`, studyColumns)
	return r.queryStudies(ctx, query, proposerID)
}

func (r *studyRepository) ListDueToStart(ctx context.Context, asOf time.Time) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE status = $1 AND start_date IS NOT NULL AND start_date <= $2`, studyColumns)
	return r.queryStudies(ctx, query, domain.StudyStatusApproved, asOf)
}

func (r *studyRepository) ListDueToComplete(ctx context.Context, asOf time.Time) ([]domain.Study, error) {
	query := fmt.Sprintf(`SELECT %s FROM studies WHERE status = $1 AND end_date IS NOT NULL AND end_date < $2`, studyColumns)
	return r.queryStudies(ctx, query, domain.StudyStatusInProgress, asOf)
}

func (r *studyRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM studies WHERE id = $1`, id)
	return err
}
