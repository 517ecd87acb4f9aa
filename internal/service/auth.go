package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/identity"
	"propertypulse-backend/internal/logger"
	"propertypulse-backend/internal/repository"
	"propertypulse-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	reqRepo  repository.JoinRequestRepository
	idp      identity.Provider
	emailSvc EmailService
	tokens   security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	reqRepo repository.JoinRequestRepository,
	idp identity.Provider,
	emailSvc EmailService,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo: userRepo,
		reqRepo:  reqRepo,
		idp:      idp,
		emailSvc: emailSvc,
		tokens:   tokens,
	}
}

// SubmitJoinRequest creates a PENDING join request for review. The email
// must not belong to an existing user or another pending request. A magic
// sign-in link is attempted right away; its failure is logged, not surfaced,
// since the request itself was recorded.
func (s *authService) SubmitJoinRequest(ctx context.Context, name, email string, role domain.Role, message string, familySize *int32) (*domain.JoinRequest, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailExists, email)
	}
	if pending, err := s.reqRepo.GetPendingByEmail(ctx, email); err == nil && pending != nil {
		return nil, fmt.Errorf("%w: a join request for %s is already pending", ErrConflict, email)
	}

	req := &domain.JoinRequest{
		Email:         email,
		Name:          name,
		RequestedRole: role,
		Message:       message,
		FamilySize:    familySize,
		Status:        domain.JoinRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	// Best effort: let the applicant sign in and track their application.
	if link, err := s.idp.SignInLink(ctx, email); err != nil {
		logger.WarnContext(ctx, "failed to issue magic link for new join request", "email", email, "error", err)
	} else if err := s.emailSvc.SendSignInLink(ctx, email, name, link); err != nil {
		logger.WarnContext(ctx, "failed to email magic link for new join request", "email", email, "error", err)
	}

	return req, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil || claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}
