package auth

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jxsus-1/api-supermarket/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Ana",
		Lastname: "García",
		Email:    "ana@example.com",
		Active:   true,
		Admin:    true,
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	user := testUser()

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Name != user.Name || claims.Lastname != user.Lastname || claims.Email != user.Email {
		t.Fatalf("claims do not match issued profile: %+v", claims)
	}
	if !claims.Active || !claims.Admin {
		t.Fatalf("expected active admin claims, got %+v", claims)
	}
	if claims.Subject != user.ID.Hex() {
		t.Fatalf("expected subject %s, got %s", user.ID.Hex(), claims.Subject)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected issued-at and expiry to be set")
	}
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), -time.Minute)
	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestParseMalformedToken(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := issuer.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewIssuer([]byte("secret-a"), time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewIssuer([]byte("secret-b"), time.Hour).Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}
