package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jxsus-1/api-supermarket/models"
)

// ErrTokenInvalid covers every parse failure: malformed, bad signature,
// unexpected signing method, and expired tokens.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims is the payload of a session token: a projection of the local User
// record at issuance time. Staleness after issuance is tolerated until expiry.
type Claims struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue builds a signed HS256 token from the user's profile fields. The token
// is self-contained: verification needs no store lookup.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:     user.Name,
		Lastname: user.Lastname,
		Email:    user.Email,
		Active:   user.Active,
		Admin:    user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the decoded claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
