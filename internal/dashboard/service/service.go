// Package service provides business logic layer for the dashboard module.
package service

import (
	"context"

	"go.uber.org/zap"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	"github.com/RootViper4/admin-portabitity/internal/dashboard/model"
	"github.com/RootViper4/admin-portabitity/internal/request/repository"
)

// Service defines the interface for dashboard business logic operations.
type Service interface {
	// GetDashboard re-derives the categorized buckets from the full current
	// snapshot for the given identity.
	GetDashboard(ctx context.Context, identity authModel.AdminIdentity) (*model.DashboardResponse, error)
}

type service struct {
	requests repository.Repository
	logger   *zap.SugaredLogger
}

// New creates a new dashboard service instance.
func New(requests repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		requests: requests,
		logger:   logger,
	}
}

// GetDashboard re-derives the categorized buckets from the full snapshot.
// Derivation is never incremental: every call recomputes from the complete
// current set.
func (s *service) GetDashboard(
	ctx context.Context,
	identity authModel.AdminIdentity,
) (*model.DashboardResponse, error) {
	var buckets model.Buckets

	if identity.Role == authModel.RoleGuest {
		// Guests never touch the store; they get the safe empty partition.
		buckets = Categorize(nil, authModel.RoleGuest, "")
	} else {
		snapshot, err := s.requests.Snapshot(ctx)
		if err != nil {
			s.logger.Errorw("GetDashboard snapshot failed", "error", err)
			return nil, err
		}
		buckets = Categorize(snapshot, identity.Role, identity.Operator)
	}

	s.logger.Debugw("dashboard derived",
		"role", identity.Role,
		"operator", identity.Operator,
		"outgoing", len(buckets.Outgoing),
		"incoming", len(buckets.Incoming),
		"validated_incoming", len(buckets.ValidatedIncoming),
	)

	return &model.DashboardResponse{
		Role:     string(identity.Role),
		Operator: string(identity.Operator),
		Buckets:  buckets,
	}, nil
}
