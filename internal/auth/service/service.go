// Package service provides business logic layer for the auth module.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	"github.com/RootViper4/admin-portabitity/internal/auth/repository"
	"github.com/RootViper4/admin-portabitity/internal/auth/session"
	"github.com/RootViper4/admin-portabitity/internal/auth/token"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Service defines the interface for auth business logic operations.
type Service interface {
	// Login signs in a credentialed admin. An authenticated principal with
	// no role record is unauthorized: the session is cleared and no token
	// is issued.
	Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error)

	// Anonymous issues a Guest token, the fallback when credentialed
	// sign-in is unavailable.
	Anonymous(ctx context.Context) (*authModel.AnonymousResponse, error)

	// Logout clears session state for a principal.
	Logout(ctx context.Context, principalID string) error

	// ResolveToken turns a bearer token into the session-scoped identity.
	ResolveToken(ctx context.Context, tokenString string) (authModel.AdminIdentity, error)
}

type service struct {
	repo     repository.Repository
	sessions session.Store
	tokens   *token.Manager
	logger   *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(
	repo repository.Repository,
	sessions session.Store,
	tokens *token.Manager,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login signs in a credentialed admin.
func (s *service) Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error) {
	account, err := s.repo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, authModel.ErrAccountNotFound) {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warnw("sign-in failed", "email", req.Email)
		return nil, authModel.ErrInvalidCredentials
	}

	record, err := s.repo.GetRole(ctx, account.ID)
	if err != nil {
		if errors.Is(err, authModel.ErrRoleNotFound) {
			// Authenticated but unauthorized: force sign-out.
			s.clearSession(ctx, account.ID)
			s.logger.Warnw("role record not found for principal", "principal", account.ID)
			return nil, authModel.ErrRoleNotFound
		}
		return nil, err
	}

	identity, err := s.buildIdentity(account.ID, record.Role, record.Operator)
	if err != nil {
		s.clearSession(ctx, account.ID)
		return nil, err
	}

	if err := s.sessions.Save(ctx, account.ID, string(identity.Role), string(identity.Operator)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	signed, expiresAt, err := s.tokens.Generate(account.ID, false)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("admin signed in", "principal", account.ID, "role", identity.Role, "operator", identity.Operator)
	return &authModel.LoginResponse{
		Token:     signed,
		Role:      identity.Role,
		Operator:  string(identity.Operator),
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// Anonymous issues a Guest token.
func (s *service) Anonymous(ctx context.Context) (*authModel.AnonymousResponse, error) {
	principalID := uuid.NewString()

	signed, _, err := s.tokens.Generate(principalID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("anonymous principal issued", "principal", principalID)
	return &authModel.AnonymousResponse{Token: signed, Role: authModel.RoleGuest}, nil
}

// Logout clears session state for a principal.
func (s *service) Logout(ctx context.Context, principalID string) error {
	if err := s.sessions.Clear(ctx, principalID); err != nil {
		return err
	}
	s.logger.Infow("admin signed out", "principal", principalID)
	return nil
}

// ResolveToken turns a bearer token into the session-scoped identity.
// Anonymous principals resolve to Guest. Credentialed principals resolve
// from persisted session state, falling back to the role-lookup table when
// the session has expired; a missing role forces sign-out.
func (s *service) ResolveToken(ctx context.Context, tokenString string) (authModel.AdminIdentity, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return authModel.AdminIdentity{}, authModel.ErrInvalidToken
	}

	if claims.Anonymous {
		return authModel.Guest(claims.Subject), nil
	}

	role, operator, err := s.sessions.Load(ctx, claims.Subject)
	if err != nil {
		if !errors.Is(err, authModel.ErrSessionNotFound) {
			return authModel.AdminIdentity{}, err
		}

		record, lookupErr := s.repo.GetRole(ctx, claims.Subject)
		if lookupErr != nil {
			if errors.Is(lookupErr, authModel.ErrRoleNotFound) {
				return authModel.AdminIdentity{}, authModel.ErrRoleNotFound
			}
			return authModel.AdminIdentity{}, lookupErr
		}
		role, operator = record.Role, record.Operator

		// Re-persist so the next resolve is a session hit again.
		if saveErr := s.sessions.Save(ctx, claims.Subject, role, operator); saveErr != nil {
			s.logger.Warnw("failed to re-persist session", "principal", claims.Subject, "error", saveErr)
		}
	}

	identity, err := s.buildIdentity(claims.Subject, role, operator)
	if err != nil {
		s.clearSession(ctx, claims.Subject)
		return authModel.AdminIdentity{}, err
	}
	return identity, nil
}

// buildIdentity converts stored role strings into a closed-variant identity.
// Anything unrecognized is unauthorized rather than silently ignored.
func (s *service) buildIdentity(principalID, roleValue, operatorValue string) (authModel.AdminIdentity, error) {
	role, err := authModel.ParseRole(roleValue)
	if err != nil {
		s.logger.Warnw("unrecognized role value", "principal", principalID, "role", roleValue)
		return authModel.AdminIdentity{}, authModel.ErrRoleNotFound
	}

	identity := authModel.AdminIdentity{PrincipalID: principalID, Role: role}

	if role == authModel.RoleProviderAdmin {
		operator, opErr := requestModel.ParseOperator(operatorValue)
		if opErr != nil {
			// A ProviderAdmin must carry a valid operator scope.
			s.logger.Warnw("provider admin without operator scope", "principal", principalID, "operator", operatorValue)
			return authModel.AdminIdentity{}, authModel.ErrRoleNotFound
		}
		identity.Operator = operator
	}
	return identity, nil
}

func (s *service) clearSession(ctx context.Context, principalID string) {
	if err := s.sessions.Clear(ctx, principalID); err != nil {
		s.logger.Warnw("failed to clear session", "principal", principalID, "error", err)
	}
}
