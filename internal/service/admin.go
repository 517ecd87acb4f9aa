package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/identity"
	"propertypulse-backend/internal/logger"
	"propertypulse-backend/internal/repository"
	"propertypulse-backend/internal/repository/postgres"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const rejectionReasonSeparator = " | Rejection Reason: "

type adminService struct {
	reqRepo    repository.JoinRequestRepository
	userRepo   repository.UserRepository
	familyRepo repository.FamilyRepository
	idp        identity.Provider
	emailSvc   EmailService
}

func NewAdminService(
	reqRepo repository.JoinRequestRepository,
	userRepo repository.UserRepository,
	familyRepo repository.FamilyRepository,
	idp identity.Provider,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		familyRepo: familyRepo,
		idp:        idp,
		emailSvc:   emailSvc,
	}
}

// ReviewJoinRequest applies an APPROVED/REJECTED decision to a pending join
// request. Approval provisions the account: a User and a Family row, then an
// identity-provider registration with a one-time sign-in link. The identity
// provider cannot participate in the database transaction, so a provisioning
// failure compensates by reverting the join request to PENDING; User/Family
// rows written before the failure are left for operator cleanup and logged.
func (s *adminService) ReviewJoinRequest(ctx context.Context, requestID int32, decision string, reviewerID int32, rejectionReason string) (*ReviewResult, error) {
	// 1. Validate the decision before touching any state.
	if decision != string(domain.JoinRequestStatusApproved) && decision != string(domain.JoinRequestStatusRejected) {
		return nil, fmt.Errorf("%w: status must be APPROVED or REJECTED", ErrInvalidInput)
	}

	// 2. Load the join request.
	joinReq, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: join request %d", ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	// 3. Only PENDING requests can be reviewed.
	if joinReq.Status != domain.JoinRequestStatusPending {
		return nil, &StatusConflictError{Current: joinReq.Status}
	}

	// 4. On approval, re-check the email against existing users. Submission
	// already checked it, but the request may have sat in the queue.
	if decision == string(domain.JoinRequestStatusApproved) {
		if existing, err := s.userRepo.GetByEmail(ctx, joinReq.Email); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, joinReq.Email)
		}
	}

	// 5. Write the decision. The repository only updates rows still PENDING,
	// so a concurrent reviewer loses here with a conflict.
	now := time.Now()
	joinReq.Status = domain.JoinRequestStatus(decision)
	joinReq.ReviewedBy = &reviewerID
	joinReq.ReviewedOn = &now
	if joinReq.Status == domain.JoinRequestStatusRejected {
		joinReq.Message = appendRejectionReason(joinReq.Message, rejectionReason)
	}
	applied, err := s.reqRepo.ApplyDecision(ctx, joinReq)
	if err != nil {
		return nil, fmt.Errorf("failed to update join request: %w", err)
	}
	if !applied {
		current, err := s.reqRepo.GetByID(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("%w: join request is no longer pending", ErrConflict)
		}
		return nil, &StatusConflictError{Current: current.Status}
	}

	// 6. Rejection has no further side effects.
	if joinReq.Status == domain.JoinRequestStatusRejected {
		if err := s.emailSvc.SendAccountStatusNotification(ctx, joinReq.Email, joinReq.Name, string(joinReq.Status), rejectionReason); err != nil {
			logger.WarnContext(ctx, "failed to send rejection notification", "email", joinReq.Email, "error", err)
		}
		return &ReviewResult{JoinRequest: joinReq}, nil
	}

	// 7. Approval: provision the account. Any failure from here reverts the
	// join request so the decision stays retryable.
	tempPassword, err := s.provision(ctx, joinReq)
	if err != nil {
		s.rollbackReview(ctx, joinReq)
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, joinReq.Email)
		}
		return nil, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}

	return &ReviewResult{JoinRequest: joinReq, TemporaryPassword: tempPassword}, nil
}

// provision creates the local User and Family rows, registers the identity
// with the provider, and requests a sign-in link. Returns the plaintext
// temporary password on success.
func (s *adminService) provision(ctx context.Context, joinReq *domain.JoinRequest) (string, error) {
	tempPassword := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash temporary password: %w", err)
	}

	user := &domain.User{
		Email:        joinReq.Email,
		Name:         joinReq.Name,
		PasswordHash: string(hash),
		Role:         joinReq.RequestedRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	var size int32
	if joinReq.FamilySize != nil {
		size = *joinReq.FamilySize
	}
	family := &domain.Family{
		Name: joinReq.Name,
		Size: size,
	}
	if err := s.familyRepo.Create(ctx, family); err != nil {
		logger.ErrorContext(ctx, "orphaned provisioning records: user created without family",
			"user_id", user.ID, "email", user.Email)
		return "", fmt.Errorf("failed to create family: %w", err)
	}

	logger.ExternalServiceCall("identity", "CreateUser", "email", joinReq.Email)
	uid, err := s.idp.CreateUser(ctx, joinReq.Email, joinReq.Name, tempPassword)
	logger.ExternalServiceResult("identity", "CreateUser", err)
	if err != nil {
		logger.ErrorContext(ctx, "orphaned provisioning records: user and family created without identity",
			"user_id", user.ID, "family_id", family.ID, "email", user.Email)
		return "", fmt.Errorf("identity provider user creation failed: %w", err)
	}

	logger.ExternalServiceCall("identity", "SignInLink", "email", joinReq.Email)
	link, err := s.idp.SignInLink(ctx, joinReq.Email)
	logger.ExternalServiceResult("identity", "SignInLink", err)
	if err != nil {
		// The identity itself is removable, so compensate before reporting.
		if delErr := s.idp.DeleteUser(ctx, uid); delErr != nil {
			logger.ErrorContext(ctx, "failed to delete identity during compensation", "uid", uid, "error", delErr)
		}
		logger.ErrorContext(ctx, "orphaned provisioning records: user and family created without sign-in link",
			"user_id", user.ID, "family_id", family.ID, "email", user.Email)
		return "", fmt.Errorf("identity provider sign-in link failed: %w", err)
	}

	if err := s.emailSvc.SendSignInLink(ctx, joinReq.Email, joinReq.Name, link); err != nil {
		logger.WarnContext(ctx, "failed to email sign-in link", "email", joinReq.Email, "error", err)
	}

	return tempPassword, nil
}

// rollbackReview reverts the join request to PENDING after a provisioning
// failure. A rollback failure is logged, never surfaced: the caller already
// reports the provisioning error, and the request is then stuck reviewed but
// unprovisioned, which needs operator attention rather than a silent success.
func (s *adminService) rollbackReview(ctx context.Context, joinReq *domain.JoinRequest) {
	if err := s.reqRepo.Revert(ctx, joinReq.ID); err != nil {
		logger.ErrorContext(ctx, "failed to roll back join request after provisioning failure",
			"join_request_id", joinReq.ID, "error", err)
		return
	}
	joinReq.Status = domain.JoinRequestStatusPending
	joinReq.ReviewedBy = nil
	joinReq.ReviewedOn = nil
}

func appendRejectionReason(message, reason string) string {
	if reason == "" {
		reason = "None provided"
	}
	if message == "" {
		return "Rejection Reason: " + reason
	}
	return message + rejectionReasonSeparator + reason
}

func (s *adminService) GetJoinRequest(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	joinReq, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: join request %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return joinReq, nil
}

func (s *adminService) ListJoinRequests(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	return s.reqRepo.List(ctx, status)
}

func (s *adminService) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, role)
}
