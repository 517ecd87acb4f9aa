package postgres

import (
	"context"
	"database/sql"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, property_id, contract_id, type, title, COALESCE(notes, ''), scheduled_on, completed_on, created_by, created_on`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (property_id, contract_id, type, title, notes, scheduled_on, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		e.PropertyID, e.ContractID, e.Type, e.Title, e.Notes, e.ScheduledOn, e.CreatedBy, time.Now(),
	).Scan(&e.ID, &e.CreatedOn)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET title = $1, notes = $2, scheduled_on = $3, completed_on = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, e.Title, e.Notes, e.ScheduledOn, e.CompletedOn, e.ID)
	return err
}

func (r *eventRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE property_id = $1 ORDER BY scheduled_on DESC`
	return r.queryEvents(ctx, query, propertyID)
}

func (r *eventRepository) ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
	          WHERE scheduled_on >= $1 AND scheduled_on < $2 AND completed_on IS NULL ORDER BY scheduled_on`
	return r.queryEvents(ctx, query, from, to)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var completedOn sql.NullTime
	err := row.Scan(&e.ID, &e.PropertyID, &e.ContractID, &e.Type, &e.Title, &e.Notes,
		&e.ScheduledOn, &completedOn, &e.CreatedBy, &e.CreatedOn)
	if err != nil {
		return nil, err
	}
	if completedOn.Valid {
		e.CompletedOn = &completedOn.Time
	}
	return e, nil
}
