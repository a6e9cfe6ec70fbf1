package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// AccountProvider is the slice of the identity provider the registration
// handler needs: create an account, and delete it again when the local insert
// fails.
type AccountProvider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
}

// FirebaseProvider implements AccountProvider on the Firebase admin SDK.
type FirebaseProvider struct {
	client *firebaseauth.Client
}

// NewFirebaseProvider initializes the admin SDK from the credentials JSON blob
// (no file on disk).
func NewFirebaseProvider(ctx context.Context, credentialsJSON []byte, projectID string) (*FirebaseProvider, error) {
	opt := option.WithCredentialsJSON(credentialsJSON)
	config := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&firebaseauth.UserToCreate{}).Email(email).Password(password)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create firebase user: %w", err)
	}
	return record.UID, nil
}

func (p *FirebaseProvider) DeleteAccount(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("delete firebase user: %w", err)
	}
	return nil
}
