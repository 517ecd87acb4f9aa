package domain

import "time"

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "DRAFT"
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusTerminated ContractStatus = "TERMINATED"
	ContractStatusExpired    ContractStatus = "EXPIRED"
)

// Contract is a rental agreement between a property owner and a tenant.
type Contract struct {
	ID               int32          `json:"id"`
	PropertyID       int32          `json:"property_id"`
	TenantID         int32          `json:"tenant_id"`
	StartDate        string         `json:"start_date"` // YYYY-MM-DD
	EndDate          string         `json:"end_date"`   // YYYY-MM-DD
	MonthlyRentCents int32          `json:"monthly_rent_cents"`
	DepositCents     int32          `json:"deposit_cents"`
	Status           ContractStatus `json:"status"`
	TerminatedReason string         `json:"terminated_reason,omitempty"`
	CreatedOn        time.Time      `json:"created_on"`
}
