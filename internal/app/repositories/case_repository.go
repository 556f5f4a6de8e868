package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/logger"
)

// CaseStore defines the interface for case database operations. Cases are
// insert-only through the application; the only delete path is the bulk
// maintenance wipe.
type CaseStore interface {
	CreateCase(ctx context.Context, c *models.Case) (int64, error)
	ListByUSN(ctx context.Context, usn string) ([]models.Case, error)
	ListByCreator(ctx context.Context, teacherID int64, limit uint64) ([]models.Case, error)
	CountByUSN(ctx context.Context, usn string) (int64, error)
	CountByCreator(ctx context.Context, teacherID int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// CaseRepository handles case database operations
type CaseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCaseRepository creates a new CaseRepository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCase inserts a new case and returns its id
func (r *CaseRepository) CreateCase(ctx context.Context, c *models.Case) (int64, error) {
	sql, args, err := r.sb.Insert("cases").
		Columns("usn", "student_name", "cohort", "department", "case_type", "occurred_on", "description", "created_by").
		Values(c.USN, c.StudentName, c.Cohort, c.Department, c.CaseType, c.OccurredOn, c.Description, c.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create case SQL")
		return 0, fmt.Errorf("failed to build create case query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("usn", c.USN).Str("caseType", string(c.CaseType)).Msg("Error executing create case query")
		return 0, fmt.Errorf("error creating case: %w", err)
	}

	logger.Info().Int64("caseID", id).Str("usn", c.USN).Str("caseType", string(c.CaseType)).Int64("createdBy", c.CreatedBy).Msg("Case filed")
	return id, nil
}

// ListByUSN retrieves every case naming the given USN, newest first
func (r *CaseRepository) ListByUSN(ctx context.Context, usn string) ([]models.Case, error) {
	q := r.sb.Select(caseColumns...).
		From("cases").
		Where(squirrel.Eq{"usn": usn}).
		OrderBy("created_at DESC")
	return r.queryCases(ctx, q)
}

// ListByCreator retrieves the most recent cases filed by a teacher
func (r *CaseRepository) ListByCreator(ctx context.Context, teacherID int64, limit uint64) ([]models.Case, error) {
	q := r.sb.Select(caseColumns...).
		From("cases").
		Where(squirrel.Eq{"created_by": teacherID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.queryCases(ctx, q)
}

// CountByUSN counts the cases naming the given USN
func (r *CaseRepository) CountByUSN(ctx context.Context, usn string) (int64, error) {
	return r.count(ctx, squirrel.Eq{"usn": usn})
}

// CountByCreator counts the cases filed by a teacher
func (r *CaseRepository) CountByCreator(ctx context.Context, teacherID int64) (int64, error) {
	return r.count(ctx, squirrel.Eq{"created_by": teacherID})
}

// DeleteAll removes every case unconditionally and returns the count
// deleted. Maintenance use only.
func (r *CaseRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cases`)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting all cases")
		return 0, fmt.Errorf("error deleting cases: %w", err)
	}
	deleted := tag.RowsAffected()
	logger.Warn().Int64("deleted", deleted).Msg("All cases deleted")
	return deleted, nil
}

var caseColumns = []string{"id", "usn", "student_name", "cohort", "department", "case_type", "occurred_on", "description", "created_by", "created_at"}

func (r *CaseRepository) queryCases(ctx context.Context, q squirrel.SelectBuilder) ([]models.Case, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build case query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying cases")
		return nil, fmt.Errorf("error querying cases: %w", err)
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		var c models.Case
		if err := rows.Scan(&c.ID, &c.USN, &c.StudentName, &c.Cohort, &c.Department,
			&c.CaseType, &c.OccurredOn, &c.Description, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case rows: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) count(ctx context.Context, pred interface{}) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("cases").Where(pred).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build case count query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting cases")
		return 0, fmt.Errorf("error counting cases: %w", err)
	}
	return n, nil
}
