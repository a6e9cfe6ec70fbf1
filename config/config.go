// Package config reads all process configuration from the environment, with a
// .env file honored for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration

	FirebaseAPIKey          string
	FirebaseCredentialsJSON string
	FirebaseProjectID       string
	IdentityToolkitURL      string

	// CatalogWriteRole is the role required on mutating catalog routes,
	// "admin" or "user".
	CatalogWriteRole string
}

// Load reads the environment. JWT_SECRET is the only hard requirement;
// everything else has a development default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getenv("PORT", "8000"),
		MongoURI:                getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:                 getenv("MONGODB_DB", "supermarket"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		IdentityToolkitURL:      os.Getenv("IDENTITY_TOOLKIT_URL"),
		CatalogWriteRole:        getenv("CATALOG_WRITE_ROLE", "admin"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl := getenv("TOKEN_TTL", "24h")
	parsed, err := time.ParseDuration(ttl)
	if err != nil || parsed <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", ttl)
	}
	cfg.TokenTTL = parsed

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
