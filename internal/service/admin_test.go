package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func pendingJoinRequest() *domain.JoinRequest {
	size := int32(3)
	return &domain.JoinRequest{
		ID:            42,
		Email:         "applicant@test.com",
		Name:          "Applicant",
		RequestedRole: domain.RoleTenant,
		Message:       "We are relocating for work",
		Status:        domain.JoinRequestStatusPending,
		FamilySize:    &size,
	}
}

func newAdminFixture() (*MockJoinRequestRepo, *MockUserRepo, *MockFamilyRepo, *MockIdentityProvider, *MockEmailService, service.AdminService) {
	reqRepo := new(MockJoinRequestRepo)
	userRepo := new(MockUserRepo)
	familyRepo := new(MockFamilyRepo)
	idp := new(MockIdentityProvider)
	emailSvc := new(MockEmailService)
	svc := service.NewAdminService(reqRepo, userRepo, familyRepo, idp, emailSvc)
	return reqRepo, userRepo, familyRepo, idp, emailSvc, svc
}

func TestReviewJoinRequest_InvalidDecision(t *testing.T) {
	reqRepo, _, _, _, _, svc := newAdminFixture()
	ctx := context.Background()

	_, err := svc.ReviewJoinRequest(ctx, 42, "MAYBE", 1, "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	reqRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReviewJoinRequest_NotFound(t *testing.T) {
	reqRepo, _, _, _, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "REJECTED", 1, "")
	assert.ErrorIs(t, err, service.ErrNotFound)
	reqRepo.AssertExpectations(t)
}

func TestReviewJoinRequest_AlreadyReviewed(t *testing.T) {
	reqRepo, _, _, _, _, svc := newAdminFixture()
	ctx := context.Background()

	joinReq := pendingJoinRequest()
	joinReq.Status = domain.JoinRequestStatusApproved
	reqRepo.On("GetByID", ctx, int32(42)).Return(joinReq, nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "REJECTED", 1, "")
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Contains(t, err.Error(), "approved")
	reqRepo.AssertNotCalled(t, "ApplyDecision", mock.Anything, mock.Anything)
	reqRepo.AssertExpectations(t)
}

func TestReviewJoinRequest_RejectWithReason(t *testing.T) {
	reqRepo, _, _, _, emailSvc, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	reqRepo.On("ApplyDecision", ctx, mock.MatchedBy(func(r *domain.JoinRequest) bool {
		return r.Status == domain.JoinRequestStatusRejected &&
			r.ReviewedBy != nil && *r.ReviewedBy == int32(7) &&
			r.ReviewedOn != nil &&
			r.Message == "We are relocating for work | Rejection Reason: incomplete application"
	})).Return(true, nil).Once()
	emailSvc.On("SendAccountStatusNotification", ctx, "applicant@test.com", "Applicant", "REJECTED", "incomplete application").Return(nil).Once()

	result, err := svc.ReviewJoinRequest(ctx, 42, "REJECTED", 7, "incomplete application")
	assert.NoError(t, err)
	assert.Equal(t, domain.JoinRequestStatusRejected, result.JoinRequest.Status)
	assert.Empty(t, result.TemporaryPassword)
	reqRepo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestReviewJoinRequest_RejectWithoutReason(t *testing.T) {
	reqRepo, _, _, _, emailSvc, svc := newAdminFixture()
	ctx := context.Background()

	joinReq := pendingJoinRequest()
	joinReq.Message = ""
	reqRepo.On("GetByID", ctx, int32(42)).Return(joinReq, nil).Once()
	reqRepo.On("ApplyDecision", ctx, mock.MatchedBy(func(r *domain.JoinRequest) bool {
		return r.Message == "Rejection Reason: None provided"
	})).Return(true, nil).Once()
	emailSvc.On("SendAccountStatusNotification", ctx, "applicant@test.com", "Applicant", "REJECTED", "").Return(nil).Once()

	result, err := svc.ReviewJoinRequest(ctx, 42, "REJECTED", 7, "")
	assert.NoError(t, err)
	assert.Equal(t, "Rejection Reason: None provided", result.JoinRequest.Message)
	reqRepo.AssertExpectations(t)
}

func TestReviewJoinRequest_ApproveProvisionsAccount(t *testing.T) {
	reqRepo, userRepo, familyRepo, idp, emailSvc, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.MatchedBy(func(r *domain.JoinRequest) bool {
		return r.Status == domain.JoinRequestStatusApproved && r.ReviewedBy != nil && *r.ReviewedBy == int32(7)
	})).Return(true, nil).Once()

	var capturedHash string
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		capturedHash = u.PasswordHash
		return u.Email == "applicant@test.com" && u.Role == domain.RoleTenant && u.PasswordHash != ""
	})).Return(nil).Once()
	familyRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Family) bool {
		return f.Name == "Applicant" && f.Size == int32(3)
	})).Return(nil).Once()
	idp.On("CreateUser", ctx, "applicant@test.com", "Applicant", mock.AnythingOfType("string")).Return("firebase-uid-1", nil).Once()
	idp.On("SignInLink", ctx, "applicant@test.com").Return("https://signin.test/link", nil).Once()
	emailSvc.On("SendSignInLink", ctx, "applicant@test.com", "Applicant", "https://signin.test/link").Return(nil).Once()

	result, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.JoinRequestStatusApproved, result.JoinRequest.Status)
	assert.NotEmpty(t, result.TemporaryPassword)

	// The stored hash must verify against the returned temporary password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte(result.TemporaryPassword)))

	reqRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	familyRepo.AssertExpectations(t)
	idp.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestReviewJoinRequest_ApproveEmailAlreadyRegistered(t *testing.T) {
	reqRepo, userRepo, _, idp, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(&domain.User{ID: 9, Email: "applicant@test.com"}, nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrEmailExists)
	reqRepo.AssertNotCalled(t, "ApplyDecision", mock.Anything, mock.Anything)
	idp.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewJoinRequest_LostRace(t *testing.T) {
	reqRepo, userRepo, _, _, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.Anything).Return(false, nil).Once()

	rejected := pendingJoinRequest()
	rejected.Status = domain.JoinRequestStatusRejected
	reqRepo.On("GetByID", ctx, int32(42)).Return(rejected, nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Contains(t, err.Error(), "rejected")
	reqRepo.AssertExpectations(t)
}

func TestReviewJoinRequest_IdentityCreateFailureRevertsToPending(t *testing.T) {
	reqRepo, userRepo, familyRepo, idp, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.Anything).Return(true, nil).Once()
	userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	familyRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	idp.On("CreateUser", ctx, "applicant@test.com", "Applicant", mock.AnythingOfType("string")).Return("", errors.New("identity provider unavailable")).Once()
	reqRepo.On("Revert", ctx, int32(42)).Return(nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrProvisioningFailed)
	reqRepo.AssertExpectations(t)
	idp.AssertNotCalled(t, "SignInLink", mock.Anything, mock.Anything)
	idp.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestReviewJoinRequest_SignInLinkFailureDeletesIdentity(t *testing.T) {
	reqRepo, userRepo, familyRepo, idp, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.Anything).Return(true, nil).Once()
	userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	familyRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	idp.On("CreateUser", ctx, "applicant@test.com", "Applicant", mock.AnythingOfType("string")).Return("firebase-uid-1", nil).Once()
	idp.On("SignInLink", ctx, "applicant@test.com").Return("", errors.New("quota exceeded")).Once()
	idp.On("DeleteUser", ctx, "firebase-uid-1").Return(nil).Once()
	reqRepo.On("Revert", ctx, int32(42)).Return(nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrProvisioningFailed)
	reqRepo.AssertExpectations(t)
	idp.AssertExpectations(t)
}

func TestReviewJoinRequest_DuplicateUserRowSurfacesEmailExists(t *testing.T) {
	reqRepo, userRepo, _, _, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.Anything).Return(true, nil).Once()
	userRepo.On("Create", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()
	reqRepo.On("Revert", ctx, int32(42)).Return(nil).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrEmailExists)
	reqRepo.AssertExpectations(t)
}

func TestReviewJoinRequest_RollbackFailureStillReportsProvisioningError(t *testing.T) {
	reqRepo, userRepo, familyRepo, idp, _, svc := newAdminFixture()
	ctx := context.Background()

	reqRepo.On("GetByID", ctx, int32(42)).Return(pendingJoinRequest(), nil).Once()
	userRepo.On("GetByEmail", ctx, "applicant@test.com").Return(nil, sql.ErrNoRows).Once()
	reqRepo.On("ApplyDecision", ctx, mock.Anything).Return(true, nil).Once()
	userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	familyRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	idp.On("CreateUser", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("unavailable")).Once()
	reqRepo.On("Revert", ctx, int32(42)).Return(errors.New("db down")).Once()

	_, err := svc.ReviewJoinRequest(ctx, 42, "APPROVED", 7, "")
	assert.ErrorIs(t, err, service.ErrProvisioningFailed)
	reqRepo.AssertExpectations(t)
}
