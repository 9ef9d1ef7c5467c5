package repository

import (
	"context"

	"marathon-submissions/core/database"
	"marathon-submissions/core/logger"
	"marathon-submissions/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

type AvailabilityRepositoryInterface interface {
	ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Availability, error)
	ReplaceTx(ctx context.Context, tx *sqlx.Tx, userID, eventID uuid.UUID, intervals []entity.Interval) error
}

func (r *AvailabilityRepository) ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Availability, error) {
	query := `
		SELECT id, user_id, event_id, start_time, duration_sec
		FROM availabilities
		WHERE user_id = $1 AND event_id = $2
		ORDER BY start_time, duration_sec
	`

	var rows []entity.Availability
	err := r.DB.SelectContext(ctx, &rows, query, userID, eventID)
	if err != nil {
		logger.Error("AvailabilityRepository:ListForUserEvent", err)
		return nil, err
	}
	return rows, nil
}

// ReplaceTx swaps the runner's entire availability set inside the caller's
// transaction: old rows deleted, one row inserted per derived interval.
func (r *AvailabilityRepository) ReplaceTx(ctx context.Context, tx *sqlx.Tx, userID, eventID uuid.UUID, intervals []entity.Interval) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM availabilities WHERE user_id = $1 AND event_id = $2`, userID, eventID); err != nil {
		logger.Error("AvailabilityRepository:ReplaceTx:Delete", err)
		return err
	}

	insert := `
		INSERT INTO availabilities (user_id, event_id, start_time, duration_sec)
		VALUES ($1, $2, $3, $4)
	`
	for _, interval := range intervals {
		if _, err := tx.ExecContext(ctx, insert,
			userID, eventID, interval.Start, int64(interval.Duration.Seconds())); err != nil {
			logger.Error("AvailabilityRepository:ReplaceTx:Insert", err)
			return err
		}
	}
	return nil
}
