package repository

import (
	"context"
	"database/sql"

	"marathon-submissions/core/database"
	"marathon-submissions/core/logger"
	"marathon-submissions/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProfileRepository struct {
	DB database.IDatabase
}

func NewProfileRepository(db database.IDatabase) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

type ProfileRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, profile *entity.Profile) error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, pronouns, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`

	var profile entity.Profile
	err := r.DB.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByUserID", err)
		return nil, err
	}
	return &profile, nil
}

// UpsertTx writes the profile inside the caller's transaction so it commits
// atomically with the availability replacement.
func (r *ProfileRepository) UpsertTx(ctx context.Context, tx *sqlx.Tx, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, pronouns)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET pronouns = $2, updated_at = NOW()
	`

	if _, err := tx.ExecContext(ctx, query, profile.UserID, profile.Pronouns); err != nil {
		logger.Error("ProfileRepository:UpsertTx", err)
		return err
	}
	return nil
}
