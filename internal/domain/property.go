package domain

import "time"

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "AVAILABLE"
	PropertyStatusRented      PropertyStatus = "RENTED"
	PropertyStatusMaintenance PropertyStatus = "MAINTENANCE"
)

type Property struct {
	ID        int32          `json:"id"`
	OwnerID   int32          `json:"owner_id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	City      string         `json:"city"`
	Type      string         `json:"type"`
	Bedrooms  int32          `json:"bedrooms"`
	Bathrooms int32          `json:"bathrooms"`
	RentCents int32          `json:"rent_cents"`
	Status    PropertyStatus `json:"status"`
	CreatedOn time.Time      `json:"created_on"`
	UpdatedOn time.Time      `json:"updated_on"`
}
