package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider on Firebase Authentication.
type FirebaseProvider struct {
	client      *auth.Client
	continueURL string
}

// NewFirebaseProvider initializes the Firebase Admin SDK from a service
// account credentials file. continueURL is where email sign-in links land.
func NewFirebaseProvider(ctx context.Context, credentialsFile, continueURL string) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client, continueURL: continueURL}, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, name, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		DisplayName(name).
		Password(password).
		EmailVerified(false)
	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("firebase create user: %w", err)
	}
	return rec.UID, nil
}

func (p *FirebaseProvider) SignInLink(ctx context.Context, email string) (string, error) {
	settings := &auth.ActionCodeSettings{
		URL:             p.continueURL,
		HandleCodeInApp: true,
	}
	link, err := p.client.EmailSignInLink(ctx, email, settings)
	if err != nil {
		return "", fmt.Errorf("firebase sign-in link: %w", err)
	}
	return link, nil
}

func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("firebase delete user: %w", err)
	}
	return nil
}
