package service_test

import (
	"context"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockFamilyRepo
type MockFamilyRepo struct {
	mock.Mock
}

func (m *MockFamilyRepo) Create(ctx context.Context, family *domain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}
func (m *MockFamilyRepo) GetByID(ctx context.Context, id int32) (*domain.Family, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}
func (m *MockFamilyRepo) List(ctx context.Context) ([]domain.Family, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Family), args.Error(1)
}
func (m *MockFamilyRepo) Update(ctx context.Context, family *domain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) GetPendingByEmail(ctx context.Context, email string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) List(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ApplyDecision(ctx context.Context, req *domain.JoinRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinRequestRepo) Revert(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) List(ctx context.Context, ownerID int32, city string, status domain.PropertyStatus) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID, city, status)
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.Contract, error) {
	args := m.Called(ctx, date, status)
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Event, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockIdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, email, name, password string) (string, error) {
	args := m.Called(ctx, email, name, password)
	return args.String(0), args.Error(1)
}
func (m *MockIdentityProvider) SignInLink(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}
func (m *MockIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSignInLink(ctx context.Context, email, name, link string) error {
	args := m.Called(ctx, email, name, link)
	return args.Error(0)
}
func (m *MockEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	args := m.Called(ctx, email, name, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendContractExpiryReminder(ctx context.Context, email, name, propertyName, endDate string) error {
	args := m.Called(ctx, email, name, propertyName, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendEventReminder(ctx context.Context, email, name, title, scheduledOn string) error {
	args := m.Called(ctx, email, name, title, scheduledOn)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestsDigest(ctx context.Context, adminEmail string, pendingCount int) error {
	args := m.Called(ctx, adminEmail, pendingCount)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
