package repository

import (
	"context"
	"database/sql"

	"marathon-submissions/core/database"
	coreentity "marathon-submissions/core/entity"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/params"
	"marathon-submissions/modules/submission/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SubmissionRepository struct {
	DB database.IDatabase
}

func NewSubmissionRepository(db database.IDatabase) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// SubmissionWithProfile joins the runner's pronouns onto a submission for
// the event-wide listing.
type SubmissionWithProfile struct {
	entity.Submission
	Pronouns sql.NullString `db:"pronouns"`
}

// LargestCategoryRow identifies a runner's longest submitted run.
type LargestCategoryRow struct {
	Game        string `db:"game"`
	Category    string `db:"category"`
	EstimateSec int64  `db:"estimate_sec"`
}

type SubmissionRepositoryInterface interface {
	CountForUserEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error)
	ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Submission, error)
	GetForUser(ctx context.Context, id, userID, eventID uuid.UUID) (*entity.Submission, error)
	ListForEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*coreentity.Pagination[SubmissionWithProfile], error)
	LargestCategory(ctx context.Context, userID, eventID uuid.UUID) (*LargestCategoryRow, error)
	SaveWithCategories(ctx context.Context, submission *entity.Submission, categories []entity.SubmissionCategory, deleteCategoryIDs []uuid.UUID) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*CategoryWithSubmission, error)
	UpdateCategoryStatus(ctx context.Context, categoryID uuid.UUID, status entity.CategoryStatus) error
}

const submissionColumns = `id, user_id, username, event_id, game, platform,
       release_year, twitch_game, description, created_at, updated_at`

const categoryColumns = `id, submission_id, status, category, race,
       estimate_sec, video, created_at, updated_at`

func (r *SubmissionRepository) CountForUserEvent(ctx context.Context, userID, eventID uuid.UUID) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM submissions WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		logger.Error("SubmissionRepository:CountForUserEvent", err)
		return 0, err
	}
	return count, nil
}

func (r *SubmissionRepository) ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE user_id = $1 AND event_id = $2
		ORDER BY game
	`

	var submissions []entity.Submission
	if err := r.DB.SelectContext(ctx, &submissions, query, userID, eventID); err != nil {
		logger.Error("SubmissionRepository:ListForUserEvent", err)
		return nil, err
	}

	if err := r.attachCategories(ctx, submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) GetForUser(ctx context.Context, id, userID, eventID uuid.UUID) (*entity.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE id = $1 AND user_id = $2 AND event_id = $3
	`

	var submission entity.Submission
	err := r.DB.GetContext(ctx, &submission, query, id, userID, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SubmissionRepository:GetForUser", err)
		return nil, err
	}

	categories, err := r.categoriesFor(ctx, submission.ID)
	if err != nil {
		return nil, err
	}
	submission.Categories = categories
	return &submission, nil
}

func (r *SubmissionRepository) ListForEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*coreentity.Pagination[SubmissionWithProfile], error) {
	offset := (p.PageNumber - 1) * p.PageSize

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems,
		`SELECT COUNT(*) FROM submissions WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("SubmissionRepository:ListForEvent:Count", err)
		return nil, err
	}

	query := `
		SELECT s.id, s.user_id, s.username, s.event_id, s.game, s.platform,
		       s.release_year, s.twitch_game, s.description, s.created_at, s.updated_at,
		       p.pronouns AS pronouns
		FROM submissions s
		LEFT JOIN profiles p ON p.user_id = s.user_id
		WHERE s.event_id = $1
		ORDER BY s.username, s.game
		LIMIT $2 OFFSET $3
	`

	var rows []SubmissionWithProfile
	if err := r.DB.SelectContext(ctx, &rows, query, eventID, p.PageSize, offset); err != nil {
		logger.Error("SubmissionRepository:ListForEvent", err)
		return nil, err
	}

	submissions := make([]entity.Submission, len(rows))
	for i := range rows {
		submissions[i] = rows[i].Submission
	}
	if err := r.attachCategories(ctx, submissions); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Submission = submissions[i]
	}

	return coreentity.NewPagination(rows, totalItems, p.PageNumber, p.PageSize), nil
}

func (r *SubmissionRepository) LargestCategory(ctx context.Context, userID, eventID uuid.UUID) (*LargestCategoryRow, error) {
	query := `
		SELECT s.game, c.category, c.estimate_sec
		FROM submission_categories c
		JOIN submissions s ON s.id = c.submission_id
		WHERE s.user_id = $1 AND s.event_id = $2
		ORDER BY c.estimate_sec DESC
		LIMIT 1
	`

	var row LargestCategoryRow
	err := r.DB.GetContext(ctx, &row, query, userID, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SubmissionRepository:LargestCategory", err)
		return nil, err
	}
	return &row, nil
}

// SaveWithCategories commits the submission and every category change in one
// transaction; any failure aborts the whole write.
func (r *SubmissionRepository) SaveWithCategories(ctx context.Context, submission *entity.Submission, categories []entity.SubmissionCategory, deleteCategoryIDs []uuid.UUID) error {
	return r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if submission.ID == uuid.Nil {
			query := `
				INSERT INTO submissions (user_id, username, event_id, game, platform, release_year, twitch_game, description)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id
			`
			if err := tx.GetContext(ctx, &submission.ID, query,
				submission.UserID, submission.Username, submission.EventID, submission.Game,
				submission.Platform, submission.ReleaseYear, submission.TwitchGame, submission.Description); err != nil {
				logger.Error("SubmissionRepository:SaveWithCategories:Insert", err)
				return err
			}
		} else {
			query := `
				UPDATE submissions
				SET game = $2, platform = $3, release_year = $4, twitch_game = $5, description = $6, updated_at = NOW()
				WHERE id = $1
			`
			if _, err := tx.ExecContext(ctx, query,
				submission.ID, submission.Game, submission.Platform, submission.ReleaseYear,
				submission.TwitchGame, submission.Description); err != nil {
				logger.Error("SubmissionRepository:SaveWithCategories:Update", err)
				return err
			}
		}

		for _, categoryID := range deleteCategoryIDs {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM submission_categories WHERE id = $1 AND submission_id = $2`,
				categoryID, submission.ID); err != nil {
				logger.Error("SubmissionRepository:SaveWithCategories:DeleteCategory", err)
				return err
			}
		}

		for i := range categories {
			category := &categories[i]
			if category.ID == uuid.Nil {
				query := `
					INSERT INTO submission_categories (submission_id, status, category, race, estimate_sec, video)
					VALUES ($1, $2, $3, $4, $5, $6)
					RETURNING id
				`
				if err := tx.GetContext(ctx, &category.ID, query,
					submission.ID, category.Status, category.Category, category.Race,
					category.EstimateSec, category.Video); err != nil {
					logger.Error("SubmissionRepository:SaveWithCategories:InsertCategory", err)
					return err
				}
			} else {
				query := `
					UPDATE submission_categories
					SET category = $3, race = $4, estimate_sec = $5, video = $6, updated_at = NOW()
					WHERE id = $1 AND submission_id = $2
				`
				if _, err := tx.ExecContext(ctx, query,
					category.ID, submission.ID, category.Category, category.Race,
					category.EstimateSec, category.Video); err != nil {
					logger.Error("SubmissionRepository:SaveWithCategories:UpdateCategory", err)
					return err
				}
			}
		}
		return nil
	})
}

func (r *SubmissionRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx,
		`DELETE FROM submissions WHERE id = :id AND user_id = :user_id`,
		map[string]any{"id": id, "user_id": userID})
	if err != nil {
		logger.Error("SubmissionRepository:DeleteForUser", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CategoryWithSubmission is a category joined with its owning submission,
// used by the admin review action.
type CategoryWithSubmission struct {
	entity.SubmissionCategory
	UserID  uuid.UUID `db:"user_id"`
	EventID uuid.UUID `db:"event_id"`
	Game    string    `db:"game"`
}

func (r *SubmissionRepository) GetCategory(ctx context.Context, categoryID uuid.UUID) (*CategoryWithSubmission, error) {
	query := `
		SELECT c.id, c.submission_id, c.status, c.category, c.race,
		       c.estimate_sec, c.video, c.created_at, c.updated_at,
		       s.user_id, s.event_id, s.game
		FROM submission_categories c
		JOIN submissions s ON s.id = c.submission_id
		WHERE c.id = $1
	`

	var row CategoryWithSubmission
	err := r.DB.GetContext(ctx, &row, query, categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SubmissionRepository:GetCategory", err)
		return nil, err
	}
	return &row, nil
}

func (r *SubmissionRepository) UpdateCategoryStatus(ctx context.Context, categoryID uuid.UUID, status entity.CategoryStatus) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE submission_categories SET status = $2, updated_at = NOW() WHERE id = $1`,
		categoryID, status)
	if err != nil {
		logger.Error("SubmissionRepository:UpdateCategoryStatus", err)
		return err
	}
	return nil
}

// attachCategories bulk-loads categories for a page of submissions.
func (r *SubmissionRepository) attachCategories(ctx context.Context, submissions []entity.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(submissions))
	index := make(map[uuid.UUID]*entity.Submission, len(submissions))
	for i := range submissions {
		ids[i] = submissions[i].ID
		index[submissions[i].ID] = &submissions[i]
	}

	query, args, err := sqlx.In(`
		SELECT `+categoryColumns+`
		FROM submission_categories
		WHERE submission_id IN (?)
		ORDER BY estimate_sec, category
	`, ids)
	if err != nil {
		return err
	}
	query = r.DB.SQLx().Rebind(query)

	var categories []entity.SubmissionCategory
	if err := r.DB.SelectContext(ctx, &categories, query, args...); err != nil {
		logger.Error("SubmissionRepository:attachCategories", err)
		return err
	}

	for i := range categories {
		if submission, ok := index[categories[i].SubmissionID]; ok {
			submission.Categories = append(submission.Categories, categories[i])
		}
	}
	return nil
}

func (r *SubmissionRepository) categoriesFor(ctx context.Context, submissionID uuid.UUID) ([]entity.SubmissionCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM submission_categories
		WHERE submission_id = $1
		ORDER BY estimate_sec, category
	`

	var categories []entity.SubmissionCategory
	if err := r.DB.SelectContext(ctx, &categories, query, submissionID); err != nil {
		logger.Error("SubmissionRepository:categoriesFor", err)
		return nil, err
	}
	return categories, nil
}
