package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
	propRepo  repository.PropertyRepository
}

func NewEventService(eventRepo repository.EventRepository, propRepo repository.PropertyRepository) EventService {
	return &eventService{eventRepo: eventRepo, propRepo: propRepo}
}

func (s *eventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	if !domain.ValidEventType(e.Type) {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, e.Type)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if e.ScheduledOn.IsZero() {
		return fmt.Errorf("%w: scheduled_on is required", ErrInvalidInput)
	}

	if _, err := s.propRepo.GetByID(ctx, e.PropertyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: property %d", ErrNotFound, e.PropertyID)
		}
		return err
	}

	return s.eventRepo.Create(ctx, e)
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: event %d", ErrNotFound, id)
		}
		return nil, err
	}
	return e, nil
}

func (s *eventService) CompleteEvent(ctx context.Context, id int32) (*domain.Event, error) {
	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.CompletedOn != nil {
		return nil, fmt.Errorf("%w: event already completed", ErrConflict)
	}

	now := time.Now()
	e.CompletedOn = &now
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to complete event: %w", err)
	}
	return e, nil
}

func (s *eventService) ListEvents(ctx context.Context, propertyID int32) ([]domain.Event, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("%w: property_id filter is required", ErrInvalidInput)
	}
	return s.eventRepo.ListByProperty(ctx, propertyID)
}
