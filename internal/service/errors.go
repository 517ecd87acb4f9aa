package service

import (
	"errors"
	"fmt"
	"strings"

	"propertypulse-backend/internal/domain"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrEmailExists        = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")

	// ErrProvisioningFailed means the approval's external provisioning
	// failed after the local status change; the join request has been
	// rolled back to PENDING.
	ErrProvisioningFailed = errors.New("failed to create user account, join request remains pending")
)

// StatusConflictError is returned when a join request is reviewed while not
// PENDING. The message names the current status, as the caller surfaces it.
type StatusConflictError struct {
	Current domain.JoinRequestStatus
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("join request already %s", strings.ToLower(string(e.Current)))
}

func (e *StatusConflictError) Is(target error) bool { return target == ErrConflict }
