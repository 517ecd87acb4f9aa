package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type familyService struct {
	familyRepo repository.FamilyRepository
}

func NewFamilyService(familyRepo repository.FamilyRepository) FamilyService {
	return &familyService{familyRepo: familyRepo}
}

func (s *familyService) GetFamily(ctx context.Context, id int32) (*domain.Family, error) {
	f, err := s.familyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: family %d", ErrNotFound, id)
		}
		return nil, err
	}
	return f, nil
}

func (s *familyService) ListFamilies(ctx context.Context) ([]domain.Family, error) {
	return s.familyRepo.List(ctx)
}

func (s *familyService) UpdatePreferences(ctx context.Context, id int32, size *int32, location *string, rentCents *int32) (*domain.Family, error) {
	f, err := s.GetFamily(ctx, id)
	if err != nil {
		return nil, err
	}

	if size != nil {
		if *size < 0 {
			return nil, fmt.Errorf("%w: family size must not be negative", ErrInvalidInput)
		}
		f.Size = *size
	}
	if location != nil {
		f.PreferredLocation = location
	}
	if rentCents != nil {
		f.PreferredRentCents = rentCents
	}

	if err := s.familyRepo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to update family: %w", err)
	}
	return f, nil
}
