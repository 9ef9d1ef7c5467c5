package repository

import (
	"context"
	"database/sql"

	"marathon-submissions/core/database"
	"marathon-submissions/core/entity"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/params"
	evententity "marathon-submissions/modules/event/entity"
)

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *evententity.Event) (*evententity.Event, error)
	GetBySlug(ctx context.Context, slug string) (*evententity.Event, error)
	ListActive(ctx context.Context) ([]evententity.Event, error)
	List(ctx context.Context, p params.QueryParams) (*entity.Pagination[evententity.Event], error)
	UpdateSettings(ctx context.Context, event *evententity.Event) error
}

const eventColumns = `id, slug, name, active, stage, start_date, end_date,
       max_games, max_categories, guidelines, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *evententity.Event) (*evententity.Event, error) {
	query := `
		INSERT INTO events (slug, name, active, stage, start_date, end_date, max_games, max_categories, guidelines)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + eventColumns

	var created evententity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Slug, event.Name, event.Active, event.Stage, event.StartDate, event.EndDate,
		event.MaxGames, event.MaxCategories, event.Guidelines)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*evententity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	var event evententity.Event
	err := r.DB.GetContext(ctx, &event, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetBySlug", err)
		return nil, err
	}
	return &event, nil
}

// ListActive returns active events newest first; the service applies the
// current-event selection rule over this ordering.
func (r *EventRepository) ListActive(ctx context.Context) ([]evententity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE active = TRUE
		ORDER BY start_date DESC, end_date DESC, name
	`

	var events []evententity.Event
	err := r.DB.SelectContext(ctx, &events, query)
	if err != nil {
		logger.Error("EventRepository:ListActive", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) List(ctx context.Context, p params.QueryParams) (*entity.Pagination[evententity.Event], error) {
	offset := (p.PageNumber - 1) * p.PageSize

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM events`); err != nil {
		logger.Error("EventRepository:List:Count", err)
		return nil, err
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_date DESC, end_date DESC, name
		LIMIT $1 OFFSET $2
	`

	var events []evententity.Event
	if err := r.DB.SelectContext(ctx, &events, query, p.PageSize, offset); err != nil {
		logger.Error("EventRepository:List", err)
		return nil, err
	}
	return entity.NewPagination(events, totalItems, p.PageNumber, p.PageSize), nil
}

func (r *EventRepository) UpdateSettings(ctx context.Context, event *evententity.Event) error {
	query := `
		UPDATE events
		SET name = $2, stage = $3, start_date = $4, end_date = $5,
		    max_games = $6, max_categories = $7, guidelines = $8, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.Stage, event.StartDate, event.EndDate,
		event.MaxGames, event.MaxCategories, event.Guidelines)
	if err != nil {
		logger.Error("EventRepository:UpdateSettings", err)
		return err
	}
	return nil
}
