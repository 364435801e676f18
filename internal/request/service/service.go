// Package service provides business logic layer for the portability request module.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
	"github.com/RootViper4/admin-portabitity/internal/request/repository"
)

// Notifier is told after every successful mutation so the live feed can
// re-broadcast the full snapshot.
type Notifier interface {
	RequestsChanged()
}

// Service defines the interface for portability request business logic.
type Service interface {
	// Snapshot returns the complete current request set for the identity.
	// Guests receive the safe empty list.
	Snapshot(ctx context.Context, actor authModel.AdminIdentity) (*requestModel.SnapshotResponse, error)

	// ListByTargetAndStatus returns the one-shot scoped list used by the
	// scoped-fetch variant.
	ListByTargetAndStatus(
		ctx context.Context,
		target requestModel.Operator,
		status requestModel.Status,
	) ([]requestModel.PortabilityRequest, error)

	// ApplyStatusTransition transitions one request into a terminal status.
	// Single attempt, synchronous result, no retry policy.
	ApplyStatusTransition(
		ctx context.Context,
		actor authModel.AdminIdentity,
		req *requestModel.TransitionRequest,
	) (*requestModel.TransitionResponse, error)

	// TransitionState reports the in-flight state of one action target.
	TransitionState(requestID, fullNumber string) *requestModel.ActionStateResponse
}

type service struct {
	repo     repository.Repository
	logger   *zap.SugaredLogger
	appID    string
	notifier Notifier
	inflight *inflightTracker
	now      func() time.Time
}

// New creates a new portability request service instance. notifier may be
// nil when no live feed is attached.
func New(repo repository.Repository, logger *zap.SugaredLogger, appID string, notifier Notifier) Service {
	return &service{
		repo:     repo,
		logger:   logger,
		appID:    appID,
		notifier: notifier,
		inflight: newInflightTracker(),
		now:      time.Now,
	}
}

// Snapshot returns the complete current request set for the identity.
func (s *service) Snapshot(
	ctx context.Context,
	actor authModel.AdminIdentity,
) (*requestModel.SnapshotResponse, error) {
	if !actor.IsAdmin() {
		return &requestModel.SnapshotResponse{Requests: []requestModel.PortabilityRequest{}}, nil
	}

	requests, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.logger.Errorw("snapshot failed", "error", err)
		return nil, err
	}
	if requests == nil {
		requests = []requestModel.PortabilityRequest{}
	}

	return &requestModel.SnapshotResponse{Requests: requests, Total: len(requests)}, nil
}

// ListByTargetAndStatus returns the scoped one-shot list.
func (s *service) ListByTargetAndStatus(
	ctx context.Context,
	target requestModel.Operator,
	status requestModel.Status,
) ([]requestModel.PortabilityRequest, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown operator: %q", target)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status: %q", status)
	}
	return s.repo.ListByTargetAndStatus(ctx, target, status)
}

// ApplyStatusTransition transitions one request into a terminal status.
func (s *service) ApplyStatusTransition(
	ctx context.Context,
	actor authModel.AdminIdentity,
	req *requestModel.TransitionRequest,
) (*requestModel.TransitionResponse, error) {
	if req.RequestID == "" {
		return nil, requestModel.ErrInvalidRequestID
	}
	if req.FullNumber == "" {
		return nil, requestModel.ErrInvalidOwnerKey
	}

	// Reject anything but Validated/Rejected before any store call.
	newStatus, err := requestModel.ParseStatus(req.NewStatus)
	if err != nil || !newStatus.ValidTransitionTarget() {
		return nil, requestModel.ErrInvalidTransition
	}

	// The owner key is the full phone number verbatim, leading '+' included.
	path := requestModel.NewDocumentPath(s.appID, req.FullNumber, req.RequestID)

	if beginErr := s.inflight.begin(path.String()); beginErr != nil {
		return nil, beginErr
	}

	resp, err := s.applyTransition(ctx, actor, path, newStatus)
	s.inflight.settle(path.String(), err)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.RequestsChanged()
	}
	return resp, nil
}

// applyTransition performs the authorization check and the single
// field-level update for one settled attempt.
func (s *service) applyTransition(
	ctx context.Context,
	actor authModel.AdminIdentity,
	path requestModel.DocumentPath,
	newStatus requestModel.Status,
) (*requestModel.TransitionResponse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf(
			"%w: admin %s may not update the document at path %s, check the security rules for that path",
			requestModel.ErrPermissionDenied, actor.PrincipalID, path)
	}

	existing, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		return nil, s.classify(err, path)
	}

	if actor.Role == authModel.RoleProviderAdmin && existing.SourceProvider != actor.Operator {
		return nil, fmt.Errorf(
			"%w: admin %s is scoped to %s and may not update the document at path %s, check the security rules for that path",
			requestModel.ErrPermissionDenied, actor.PrincipalID, actor.Operator, path)
	}

	// Re-applying a transition to an already-terminal request silently
	// succeeds: the store does not reject no-op-adjacent writes. Logged so
	// double-processing is at least visible.
	if existing.Status.Terminal() {
		s.logger.Warnw("transition re-applied to terminal request",
			"request_id", path.RequestID,
			"current_status", existing.Status,
			"new_status", newStatus,
		)
	}

	processedAt := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, path, newStatus, processedAt); err != nil {
		return nil, s.classify(err, path)
	}

	s.logger.Infow("request transitioned",
		"request_id", path.RequestID,
		"owner_key", path.OwnerKey,
		"path", path.String(),
		"new_status", newStatus,
		"admin", actor.PrincipalID,
	)

	verb := "rejected"
	if newStatus == requestModel.StatusValidated {
		verb = "validated"
	}
	return &requestModel.TransitionResponse{
		Message: fmt.Sprintf("request for %s %s successfully", path.OwnerKey, verb),
		Path:    path.String(),
		Status:  newStatus,
	}, nil
}

// classify folds store failures into the three distinguishable outcomes:
// NotFound, PermissionDenied and Unknown (which keeps the underlying message).
func (s *service) classify(err error, path requestModel.DocumentPath) error {
	switch {
	case errors.Is(err, requestModel.ErrRequestNotFound):
		return fmt.Errorf("%w: path %s is invalid or does not exist, check the path and the app id",
			requestModel.ErrRequestNotFound, path)
	case errors.Is(err, requestModel.ErrPermissionDenied):
		return fmt.Errorf("%w: path %s, check the security rules for that path",
			requestModel.ErrPermissionDenied, path)
	default:
		s.logger.Errorw("transition failed", "path", path.String(), "error", err)
		return fmt.Errorf("failed to update document at path %s: %w", path, err)
	}
}

// TransitionState reports the in-flight state of one action target.
func (s *service) TransitionState(requestID, fullNumber string) *requestModel.ActionStateResponse {
	path := requestModel.NewDocumentPath(s.appID, fullNumber, requestID)
	state := s.inflight.state(path.String())

	return &requestModel.ActionStateResponse{
		Path:   path.String(),
		Phase:  string(state.Phase),
		Reason: state.Reason,
	}
}
