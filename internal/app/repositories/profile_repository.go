package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/apperrors"
	"github.com/campushq/discipline/internal/pkg/dberrors"
	"github.com/campushq/discipline/internal/pkg/logger"
)

// ProfileStore defines the interface for extended profile operations
type ProfileStore interface {
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	GetTeacherProfileByUserID(ctx context.Context, userID int64) (*models.TeacherProfile, error)
}

// ProfileRepository handles student and teacher profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudentProfile creates the extended profile row for a student account
func (r *ProfileRepository) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	sql, args, err := r.sb.Insert("student_profiles").
		Columns("user_id", "full_name", "phone", "course", "address").
		Values(profile.UserID, profile.FullName, profile.Phone, profile.Course, profile.Address).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student profile query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateIdentifier
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error creating student profile")
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// GetStudentProfileByUserID retrieves a student profile by account id
func (r *ProfileRepository) GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select("id", "user_id", "full_name", "phone", "course", "address", "created_at", "updated_at").
		From("student_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student profile query: %w", err)
	}

	var p models.StudentProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Course, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student profile row")
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return &p, nil
}

// UpdateStudentProfile writes the full profile row back. The service layer
// merges partial updates before calling this.
func (r *ProfileRepository) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	sql, args, err := r.sb.Update("student_profiles").
		Set("full_name", profile.FullName).
		Set("phone", profile.Phone).
		Set("course", profile.Course).
		Set("address", profile.Address).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error updating student profile")
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetTeacherProfileByUserID retrieves the optional extended teacher record
func (r *ProfileRepository) GetTeacherProfileByUserID(ctx context.Context, userID int64) (*models.TeacherProfile, error) {
	sql, args, err := r.sb.Select("id", "user_id", "employee_id", "full_name", "phone", "department", "address", "created_at", "updated_at").
		From("teacher_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher profile query: %w", err)
	}

	var p models.TeacherProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.EmployeeID, &p.FullName, &p.Phone, &p.Department, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning teacher profile row")
		return nil, fmt.Errorf("error retrieving teacher profile: %w", err)
	}
	return &p, nil
}
