package domain

import "time"

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RolePropertyManager Role = "PROPERTY_MANAGER"
	RoleOwner           Role = "OWNER"
	RoleTenant          Role = "TENANT"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RolePropertyManager, RoleOwner, RoleTenant, RoleServiceProvider:
		return true
	}
	return false
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
