// Package service provides business logic layer for the analytics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/analytics/model"
	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	"github.com/RootViper4/admin-portabitity/internal/request/repository"
)

// Service defines the interface for analytics business logic operations.
type Service interface {
	// GetAnalytics recomputes the entry/exit report from the full current
	// snapshot for the given identity.
	GetAnalytics(ctx context.Context, identity authModel.AdminIdentity) (*model.AnalyticsResponse, error)
}

type service struct {
	requests repository.Repository
	logger   *zap.SugaredLogger
}

// New creates a new analytics service instance.
func New(requests repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		requests: requests,
		logger:   logger,
	}
}

// GetAnalytics recomputes the report from the full snapshot. Guests track no
// operators and receive an empty report without touching the store.
func (s *service) GetAnalytics(
	ctx context.Context,
	identity authModel.AdminIdentity,
) (*model.AnalyticsResponse, error) {
	tracked := identity.TrackedOperators()

	var report *model.Report
	if len(tracked) == 0 {
		report = Aggregate(nil, nil, identity.Role)
	} else {
		snapshot, err := s.requests.Snapshot(ctx)
		if err != nil {
			s.logger.Errorw("GetAnalytics snapshot failed", "error", err)
			return nil, err
		}
		report = Aggregate(snapshot, tracked, identity.Role)
	}

	s.logger.Debugw("analytics derived",
		"role", identity.Role,
		"operator", identity.Operator,
		"years", len(report.Years),
	)

	return toResponse(identity, report), nil
}

// toResponse serializes a report, emitting the annual breakdown only for
// the years the role is allowed to see.
func toResponse(identity authModel.AdminIdentity, report *model.Report) *model.AnalyticsResponse {
	resp := &model.AnalyticsResponse{
		Role:          string(identity.Role),
		Years:         report.Years,
		Annual:        make(map[int]map[string]model.OperatorAnalytics, len(report.Years)),
		OverallTotals: make(map[string]model.OperatorAnalytics, len(report.OverallTotals)),
	}

	for _, year := range report.Years {
		breakdown := make(map[string]model.OperatorAnalytics, len(report.Annual[year]))
		for op, cell := range report.Annual[year] {
			breakdown[string(op)] = *cell
		}
		resp.Annual[year] = breakdown
	}

	for op, cell := range report.OverallTotals {
		resp.OverallTotals[string(op)] = *cell
	}

	return resp
}
