package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/logger"
	"propertypulse-backend/internal/repository"
)

type contractService struct {
	contractRepo repository.ContractRepository
	propRepo     repository.PropertyRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
}

func NewContractService(
	contractRepo repository.ContractRepository,
	propRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		propRepo:     propRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
	}
}

// CreateContract activates a lease: the property must be AVAILABLE and the
// tenant must hold the TENANT role. The property flips to RENTED.
func (s *contractService) CreateContract(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}
	end, err := time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", ErrInvalidInput)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}

	prop, err := s.propRepo.GetByID(ctx, c.PropertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, c.PropertyID)
		}
		return nil, err
	}
	if prop.Status != domain.PropertyStatusAvailable {
		return nil, fmt.Errorf("%w: property is %s", ErrConflict, prop.Status)
	}

	tenant, err := s.userRepo.GetByID(ctx, c.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: tenant %d", ErrNotFound, c.TenantID)
	}
	if tenant.Role != domain.RoleTenant {
		return nil, fmt.Errorf("%w: user %d is not a tenant", ErrInvalidInput, c.TenantID)
	}

	if c.MonthlyRentCents == 0 {
		c.MonthlyRentCents = prop.RentCents
	}
	c.Status = domain.ContractStatusActive

	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	prop.Status = domain.PropertyStatusRented
	if err := s.propRepo.Update(ctx, prop); err != nil {
		logger.ErrorContext(ctx, "contract created but property status not updated",
			"contract_id", c.ID, "property_id", prop.ID, "error", err)
	}

	return c, nil
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: contract %d", ErrNotFound, id)
		}
		return nil, err
	}
	return c, nil
}

func (s *contractService) TerminateContract(ctx context.Context, id int32, reason string) (*domain.Contract, error) {
	c, err := s.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.ContractStatusActive {
		return nil, fmt.Errorf("%w: contract is %s", ErrConflict, c.Status)
	}

	c.Status = domain.ContractStatusTerminated
	c.TerminatedReason = reason
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to terminate contract: %w", err)
	}

	// Free the property up for a new lease.
	if prop, err := s.propRepo.GetByID(ctx, c.PropertyID); err == nil {
		prop.Status = domain.PropertyStatusAvailable
		if err := s.propRepo.Update(ctx, prop); err != nil {
			logger.ErrorContext(ctx, "contract terminated but property status not updated",
				"contract_id", c.ID, "property_id", prop.ID, "error", err)
		}
	}

	return c, nil
}

func (s *contractService) ListContracts(ctx context.Context, propertyID, tenantID int32) ([]domain.Contract, error) {
	switch {
	case propertyID != 0:
		return s.contractRepo.ListByProperty(ctx, propertyID)
	case tenantID != 0:
		return s.contractRepo.ListByTenant(ctx, tenantID)
	default:
		return nil, fmt.Errorf("%w: property_id or tenant_id filter is required", ErrInvalidInput)
	}
}
