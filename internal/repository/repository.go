package repository

import (
	"context"

	"propertypulse-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type FamilyRepository interface {
	Create(ctx context.Context, family *domain.Family) error
	GetByID(ctx context.Context, id int32) (*domain.Family, error)
	List(ctx context.Context) ([]domain.Family, error)
	Update(ctx context.Context, family *domain.Family) error
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error)
	GetPendingByEmail(ctx context.Context, email string) (*domain.JoinRequest, error)
	List(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error)

	// ApplyDecision writes the review outcome only if the row is still
	// PENDING. It reports false when another reviewer got there first.
	ApplyDecision(ctx context.Context, req *domain.JoinRequest) (bool, error)

	// Revert restores a reviewed request to PENDING, clearing the reviewer
	// fields. Used only by the provisioning-failure compensation path.
	Revert(ctx context.Context, id int32) error
}

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, ownerID int32, city string, status domain.PropertyStatus) ([]domain.Property, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Contract, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Contract, error)
	ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.Contract, error)
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Event, error)
	ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Event, error)
}
