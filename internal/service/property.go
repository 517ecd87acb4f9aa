package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type propertyService struct {
	propRepo repository.PropertyRepository
	userRepo repository.UserRepository
}

func NewPropertyService(propRepo repository.PropertyRepository, userRepo repository.UserRepository) PropertyService {
	return &propertyService{propRepo: propRepo, userRepo: userRepo}
}

func (s *propertyService) AddProperty(ctx context.Context, p *domain.Property) error {
	if p.Name == "" || p.Address == "" {
		return fmt.Errorf("%w: name and address are required", ErrInvalidInput)
	}
	if p.RentCents < 0 {
		return fmt.Errorf("%w: rent must not be negative", ErrInvalidInput)
	}
	if p.Status == "" {
		p.Status = domain.PropertyStatusAvailable
	}

	owner, err := s.userRepo.GetByID(ctx, p.OwnerID)
	if err != nil {
		return fmt.Errorf("%w: owner %d", ErrNotFound, p.OwnerID)
	}
	if owner.Role != domain.RoleOwner && owner.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: user %d cannot own properties", ErrInvalidInput, p.OwnerID)
	}

	return s.propRepo.Create(ctx, p)
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	p, err := s.propRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, callerID int32, callerRole domain.Role, p *domain.Property) error {
	existing, err := s.GetProperty(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(callerID, callerRole, existing); err != nil {
		return err
	}
	p.OwnerID = existing.OwnerID
	return s.propRepo.Update(ctx, p)
}

func (s *propertyService) DeleteProperty(ctx context.Context, callerID int32, callerRole domain.Role, id int32) error {
	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(callerID, callerRole, existing); err != nil {
		return err
	}
	if existing.Status == domain.PropertyStatusRented {
		return fmt.Errorf("%w: property is under an active contract", ErrConflict)
	}
	return s.propRepo.Delete(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context, ownerID int32, city string, status domain.PropertyStatus) ([]domain.Property, error) {
	return s.propRepo.List(ctx, ownerID, city, status)
}

func (s *propertyService) checkOwnership(callerID int32, callerRole domain.Role, p *domain.Property) error {
	if callerRole == domain.RoleAdmin || callerRole == domain.RolePropertyManager {
		return nil
	}
	if p.OwnerID != callerID {
		return fmt.Errorf("%w: property belongs to another owner", ErrForbidden)
	}
	return nil
}
