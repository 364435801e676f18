// Package token provides JWT generation and validation for admin principals.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
)

// Claims are the JWT claims carried by an issued admin token. Role and
// operator scope are deliberately not embedded: they live in session state
// and the role-lookup table so a revoked role takes effect without waiting
// for token expiry.
type Claims struct {
	Anonymous bool `json:"anonymous,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 tokens.
type Manager struct {
	secret    []byte
	expiresIn time.Duration
	issuer    string
}

// NewManager creates a new token manager.
func NewManager(secret string, expiresIn time.Duration, issuer string) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret cannot be empty")
	}
	if expiresIn == 0 {
		expiresIn = 24 * time.Hour
	}
	if issuer == "" {
		issuer = "portability-admin"
	}

	return &Manager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		issuer:    issuer,
	}, nil
}

// Generate issues a token for a principal.
func (m *Manager) Generate(principalID string, anonymous bool) (string, time.Time, error) {
	if principalID == "" {
		return "", time.Time{}, fmt.Errorf("principal ID cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(m.expiresIn)
	claims := Claims{
		Anonymous: anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies a token, returning its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, authModel.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, authModel.ErrInvalidToken
	}
	return claims, nil
}
