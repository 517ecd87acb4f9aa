package domain

import "time"

// Family groups applicants approved through a join request. It carries no
// foreign key to the user created alongside it; linkage is an operational
// concern handled outside this service.
type Family struct {
	ID                 int32     `json:"id"`
	Name               string    `json:"name"`
	Size               int32     `json:"size"`
	CreditScore        int32     `json:"credit_score"`
	PreferredLocation  *string   `json:"preferred_location,omitempty"`
	PreferredRentCents *int32    `json:"preferred_rent_cents,omitempty"`
	CreatedOn          time.Time `json:"created_on"`
}
