package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/logger"
)

// ActivityStore defines the interface for the append-only activity log.
// No deduplication and no size cap: unbounded growth is accepted.
type ActivityStore interface {
	Record(ctx context.Context, userID int64, action, details string) error
	ListRecent(ctx context.Context, userID int64, limit uint64) ([]models.Activity, error)
}

// ActivityRepository handles activity-log database operations
type ActivityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Record appends an activity record for an account
func (r *ActivityRepository) Record(ctx context.Context, userID int64, action, details string) error {
	sql, args, err := r.sb.Insert("activities").
		Columns("user_id", "action", "details").
		Values(userID, action, details).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record activity query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Str("action", action).Msg("Error recording activity")
		return fmt.Errorf("error recording activity: %w", err)
	}
	return nil
}

// ListRecent returns the most recent activity records for an account,
// newest first
func (r *ActivityRepository) ListRecent(ctx context.Context, userID int64, limit uint64) ([]models.Activity, error) {
	sql, args, err := r.sb.Select("id", "user_id", "action", "details", "created_at").
		From("activities").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list activities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error querying activities")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Details, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return activities, nil
}
