package identity

import (
	"context"
	"fmt"

	"propertypulse-backend/internal/logger"
)

// DisabledProvider is used in local development when no Firebase project is
// configured. It logs each call and returns placeholder values.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) CreateUser(ctx context.Context, email, name, password string) (string, error) {
	logger.InfoContext(ctx, "identity provider disabled, skipping user creation", "email", email)
	return "disabled-" + email, nil
}

func (p *DisabledProvider) SignInLink(ctx context.Context, email string) (string, error) {
	logger.InfoContext(ctx, "identity provider disabled, returning placeholder sign-in link", "email", email)
	return fmt.Sprintf("https://localhost/sign-in?email=%s", email), nil
}

func (p *DisabledProvider) DeleteUser(ctx context.Context, uid string) error {
	logger.InfoContext(ctx, "identity provider disabled, skipping user deletion", "uid", uid)
	return nil
}
