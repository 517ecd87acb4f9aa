package service

import (
	"context"

	"propertypulse-backend/internal/domain"
)

// ReviewResult is the outcome of a join-request review. TemporaryPassword is
// set only when an approval fully provisioned the account; the admin UI may
// relay it, though the emailed sign-in link is the primary path.
type ReviewResult struct {
	JoinRequest       *domain.JoinRequest `json:"join_request"`
	TemporaryPassword string              `json:"temporary_password,omitempty"`
}

type AdminService interface {
	ReviewJoinRequest(ctx context.Context, requestID int32, decision string, reviewerID int32, rejectionReason string) (*ReviewResult, error)
	GetJoinRequest(ctx context.Context, id int32) (*domain.JoinRequest, error)
	ListJoinRequests(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error)
	ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type AuthService interface {
	SubmitJoinRequest(ctx context.Context, name, email string, role domain.Role, message string, familySize *int32) (*domain.JoinRequest, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone string) error
}

type FamilyService interface {
	GetFamily(ctx context.Context, id int32) (*domain.Family, error)
	ListFamilies(ctx context.Context) ([]domain.Family, error)
	UpdatePreferences(ctx context.Context, id int32, size *int32, location *string, rentCents *int32) (*domain.Family, error)
}

type PropertyService interface {
	AddProperty(ctx context.Context, p *domain.Property) error
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	UpdateProperty(ctx context.Context, callerID int32, callerRole domain.Role, p *domain.Property) error
	DeleteProperty(ctx context.Context, callerID int32, callerRole domain.Role, id int32) error
	ListProperties(ctx context.Context, ownerID int32, city string, status domain.PropertyStatus) ([]domain.Property, error)
}

type ContractService interface {
	CreateContract(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	GetContract(ctx context.Context, id int32) (*domain.Contract, error)
	TerminateContract(ctx context.Context, id int32, reason string) (*domain.Contract, error)
	ListContracts(ctx context.Context, propertyID, tenantID int32) ([]domain.Contract, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, e *domain.Event) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	CompleteEvent(ctx context.Context, id int32) (*domain.Event, error)
	ListEvents(ctx context.Context, propertyID int32) ([]domain.Event, error)
}

type EmailService interface {
	SendSignInLink(ctx context.Context, email, name, link string) error
	SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error
	SendContractExpiryReminder(ctx context.Context, email, name, propertyName, endDate string) error
	SendEventReminder(ctx context.Context, email, name, title, scheduledOn string) error
	SendPendingRequestsDigest(ctx context.Context, adminEmail string, pendingCount int) error
}
