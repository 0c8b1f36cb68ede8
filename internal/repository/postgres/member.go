package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/repository"
)

const memberColumns = `id, study_id, user_id, role, status, warning_count,
	joined_at, last_active_at, left_at, version`

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (id, study_id, user_id, role, status, warning_count,
	          joined_at, last_active_at, left_at, version)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.StudyID, m.UserID, m.Role, m.Status, m.WarningCount,
		m.JoinedAt, m.LastActiveAt, m.LeftAt)
	return err
}

func scanMember(row interface{ Scan(...any) error }) (*domain.Member, error) {
	m := &domain.Member{}
	err := row.Scan(&m.ID, &m.StudyID, &m.UserID, &m.Role, &m.Status, &m.WarningCount,
		&m.JoinedAt, &m.LastActiveAt, &m.LeftAt, &m.Version)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = $1`, memberColumns)
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	return m, err
}

func (r *memberRepository) GetByStudyAndUser(ctx context.Context, studyID, userID string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE study_id = $1 AND user_id = $2 AND status != $3`, memberColumns)
	m, err := scanMember(r.db.QueryRowContext(ctx, query, studyID, userID, domain.MemberStatusWithdrawn))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	return m, err
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET role = $2, status = $3, warning_count = $4, last_active_at = $5,
	          left_at = $6, version = version + 1
	          WHERE id = $1 AND version = $7`
	res, err := r.db.ExecContext(ctx, query, m.ID, m.Role, m.Status, m.WarningCount, m.LastActiveAt, m.LeftAt, m.Version)
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
	m.Version++
	return nil
}

func (r *memberRepository) ListByStudy(ctx context.Context, studyID string, offset, limit int32) ([]domain.Member, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM members WHERE study_id = $1 AND status != $2`
	if err := r.db.QueryRowContext(ctx, countQuery, studyID, domain.MemberStatusWithdrawn).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`SELECT %s FROM members WHERE study_id = $1 AND status != $2 ORDER BY joined_at LIMIT $3 OFFSET $4`, memberColumns)
	rows, err := r.db.QueryContext(ctx, query, studyID, domain.MemberStatusWithdrawn, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, *m)
	}
	return members, total, rows.Err()
}

func (r *memberRepository) ListByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE user_id = $1 AND status != $2 ORDER BY joined_at DESC`, memberColumns)
	rows, err := r.db.QueryContext(ctx, query, userID, domain.MemberStatusWithdrawn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *memberRepository) CountByStudy(ctx context.Context, studyID string) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM members WHERE study_id = $1 AND status != $2`
	err := r.db.QueryRowContext(ctx, query, studyID, domain.MemberStatusWithdrawn).Scan(&count)
	return count, err
}

func (r *memberRepository) CountByStudyAndStatus(ctx context.Context, studyID string, status domain.MemberStatus) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM members WHERE study_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, studyID, status).Scan(&count)
	return count, err
}

func (r *memberRepository) CountByRole(ctx context.Context, studyID string) (map[domain.MemberRole]int32, error) {
	query := `SELECT role, COUNT(*) FROM members WHERE study_id = $1 AND status != $2 GROUP BY role`
	rows, err := r.db.QueryContext(ctx, query, studyID, domain.MemberStatusWithdrawn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.MemberRole]int32)
	for rows.Next() {
		var role domain.MemberRole
		var count int32
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	return counts, rows.Err()
}

func (r *memberRepository) CountByWarnings(ctx context.Context, studyID string) (map[int32]int32, error) {
	query := `SELECT warning_count, COUNT(*) FROM members WHERE study_id = $1 AND status != $2 GROUP BY warning_count`
	rows, err := r.db.QueryContext(ctx, query, studyID, domain.MemberStatusWithdrawn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int32]int32)
	for rows.Next() {
		var warnings, count int32
		if err := rows.Scan(&warnings, &count); err != nil {
			return nil, err
		}
		counts[warnings] = count
	}
	return counts, rows.Err()
}

func (r *memberRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}
