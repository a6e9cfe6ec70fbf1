package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultIdentityToolkitURL is the Firebase password-grant endpoint. The admin
// SDK has no password verification API, so login goes through this REST call.
const DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

var (
	// ErrInvalidCredentials reports that the provider rejected the email or
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUpstream reports that the provider could not be reached or returned
	// an unreadable response.
	ErrUpstream = errors.New("identity provider unavailable")
)

// Verifier checks an email/password pair against the external identity
// provider. It performs no local mutation.
type Verifier struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
}

func NewVerifier(apiKey string) *Verifier {
	return &Verifier{
		APIKey:   apiKey,
		Endpoint: DefaultIdentityToolkitURL,
		Client:   http.DefaultClient,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Verify asks the provider to confirm the pair. A provider-reported rejection
// maps to ErrInvalidCredentials, anything else to ErrUpstream.
func (v *Verifier) Verify(ctx context.Context, email, password string) error {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	url := v.Endpoint + "?key=" + v.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var decoded signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if decoded.Error != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, decoded.Error.Message)
	}
	return nil
}
