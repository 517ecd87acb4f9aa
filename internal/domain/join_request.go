package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "PENDING"
	JoinRequestStatusApproved JoinRequestStatus = "APPROVED"
	JoinRequestStatusRejected JoinRequestStatus = "REJECTED"
)

// JoinRequest is an application to become a platform user. Status moves
// PENDING -> APPROVED or PENDING -> REJECTED; the only path back to PENDING
// is the compensating rollback after a failed approval provisioning.
type JoinRequest struct {
	ID            int32             `json:"id"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	RequestedRole Role              `json:"requested_role"`
	Message       string            `json:"message,omitempty"`
	Status        JoinRequestStatus `json:"status"`
	ReviewedBy    *int32            `json:"reviewed_by,omitempty"`
	ReviewedOn    *time.Time        `json:"reviewed_on,omitempty"`
	FamilySize    *int32            `json:"family_size,omitempty"`
	CreatedOn     time.Time         `json:"created_on"`
	UpdatedOn     time.Time         `json:"updated_on"`
}
