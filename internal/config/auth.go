package config

import (
	"fmt"
	"time"
)

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	// JWTSecret signs access tokens. Required outside of tests.
	JWTSecret string
	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration
	// Issuer is the value placed in the token iss claim.
	Issuer string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("JWT_SECRET", ""),
		TokenTTL:  GetEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		Issuer:    GetEnv("JWT_ISSUER", "portability-admin"),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	return nil
}
