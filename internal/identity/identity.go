// Package identity abstracts the external identity provider that owns
// authentication credentials and sign-in links. The workflow layer only sees
// the Provider interface so it can be tested against a fake.
package identity

import "context"

// Provider creates and removes auth identities and issues one-time sign-in
// links. Calls are not idempotent; callers own any compensation.
type Provider interface {
	// CreateUser registers an identity for email with the given bootstrap
	// password and returns the provider's UID for it.
	CreateUser(ctx context.Context, email, name, password string) (string, error)

	// SignInLink issues a one-time email sign-in link for an existing
	// identity.
	SignInLink(ctx context.Context, email string) (string, error)

	// DeleteUser removes the identity with the given provider UID.
	DeleteUser(ctx context.Context, uid string) error
}
