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

// UserStore defines the interface for account database operations
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string, role models.RoleType) (*models.User, error)
	IdentifierExists(ctx context.Context, identifier string, role models.RoleType) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
}

// UserRepository handles account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser creates a new account and returns its id
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("identifier", "email", "password", "full_name", "role_type", "department", "cohort").
		Values(user.Identifier, user.Email, user.Password, user.FullName, user.RoleType, user.Department, user.Cohort).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_identifier_role_type_key") {
			logger.Warn().Str("identifier", user.Identifier).Str("role", string(user.RoleType)).Msg("Attempted to create account with duplicate identifier")
			return 0, apperrors.ErrDuplicateIdentifier
		}
		logger.Error().Err(err).Str("identifier", user.Identifier).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userID", id).Str("identifier", user.Identifier).Str("role", string(user.RoleType)).Msg("Account created")
	return id, nil
}

// GetUserByID retrieves an account by id
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}
	return r.scanUser(ctx, sql, args)
}

// GetUserByIdentifier retrieves an account by identifier and role
func (r *UserRepository) GetUserByIdentifier(ctx context.Context, identifier string, role models.RoleType) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"identifier": identifier, "role_type": role}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}
	return r.scanUser(ctx, sql, args)
}

// IdentifierExists checks whether an account with this identifier and role exists
func (r *UserRepository) IdentifierExists(ctx context.Context, identifier string, role models.RoleType) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"identifier": identifier, "role_type": role}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build identifier exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("identifier", identifier).Msg("Error checking identifier existence")
		return false, fmt.Errorf("error checking identifier existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword overwrites the stored credential hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	logger.Info().Int64("userID", userID).Msg("Credential updated")
	return nil
}

var userColumns = []string{"id", "identifier", "email", "password", "full_name", "role_type", "department", "cohort", "created_at", "updated_at"}

func (r *UserRepository) scanUser(ctx context.Context, sql string, args []interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Identifier, &user.Email, &user.Password, &user.FullName,
		&user.RoleType, &user.Department, &user.Cohort, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}
