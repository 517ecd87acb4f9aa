package domain

import "time"

type EventType string

const (
	EventTypeLeaseSigning EventType = "LEASE_SIGNING"
	EventTypePayment      EventType = "PAYMENT"
	EventTypeInspection   EventType = "INSPECTION"
	EventTypeMaintenance  EventType = "MAINTENANCE"
)

// ValidEventType reports whether t is one of the defined event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventTypeLeaseSigning, EventTypePayment, EventTypeInspection, EventTypeMaintenance:
		return true
	}
	return false
}

// Event is a dated occurrence attached to a property: a lease signing, a
// payment, an inspection, or maintenance work.
type Event struct {
	ID          int32      `json:"id"`
	PropertyID  int32      `json:"property_id"`
	ContractID  *int32     `json:"contract_id,omitempty"`
	Type        EventType  `json:"type"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	ScheduledOn time.Time  `json:"scheduled_on"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	CreatedBy   int32      `json:"created_by"`
	CreatedOn   time.Time  `json:"created_on"`
}
