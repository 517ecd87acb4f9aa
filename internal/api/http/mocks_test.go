package http_test

import (
	"context"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ReviewJoinRequest(ctx context.Context, requestID int32, decision string, reviewerID int32, rejectionReason string) (*service.ReviewResult, error) {
	args := m.Called(ctx, requestID, decision, reviewerID, rejectionReason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewResult), args.Error(1)
}
func (m *MockAdminService) GetJoinRequest(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockAdminService) ListJoinRequests(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockAdminService) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SubmitJoinRequest(ctx context.Context, name, email string, role domain.Role, message string, familySize *int32) (*domain.JoinRequest, error) {
	args := m.Called(ctx, name, email, role, message, familySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}
