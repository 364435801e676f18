// Package repository provides data access layer for the portability request module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Repository defines the interface for portability request data access.
type Repository interface {
	// Snapshot returns the full current set of requests across all owners.
	// Every delivery is the complete set, never a diff.
	Snapshot(ctx context.Context) ([]requestModel.PortabilityRequest, error)

	// ListByTargetAndStatus returns the one-shot scoped list of requests
	// for a target operator in a given status.
	ListByTargetAndStatus(
		ctx context.Context,
		target requestModel.Operator,
		status requestModel.Status,
	) ([]requestModel.PortabilityRequest, error)

	// GetByPath finds the single request addressed by the derived document path.
	GetByPath(ctx context.Context, path requestModel.DocumentPath) (*requestModel.PortabilityRequest, error)

	// UpdateStatus applies a single atomic field-level update of status and
	// processed_at on the request addressed by path.
	UpdateStatus(
		ctx context.Context,
		path requestModel.DocumentPath,
		status requestModel.Status,
		processedAt time.Time,
	) error

	// Create inserts a new request. The submission flow itself is external;
	// this exists for seeding and tests.
	Create(ctx context.Context, req *requestModel.PortabilityRequest) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new portability request repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Snapshot returns the full current set of requests across all owners.
func (r *repository) Snapshot(ctx context.Context) ([]requestModel.PortabilityRequest, error) {
	var requests []requestModel.PortabilityRequest
	err := r.db.WithContext(ctx).Find(&requests).Error
	if err != nil {
		return nil, err
	}

	for i := range requests {
		requests[i].ApplyDisplayDefaults()
	}
	return requests, nil
}

// ListByTargetAndStatus returns requests for a target operator in a status.
func (r *repository) ListByTargetAndStatus(
	ctx context.Context,
	target requestModel.Operator,
	status requestModel.Status,
) ([]requestModel.PortabilityRequest, error) {
	var requests []requestModel.PortabilityRequest
	err := r.db.WithContext(ctx).
		Where("target_provider = ? AND status = ?", target, status).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	for i := range requests {
		requests[i].ApplyDisplayDefaults()
	}
	return requests, nil
}

// GetByPath finds the single request addressed by the derived document path.
func (r *repository) GetByPath(
	ctx context.Context,
	path requestModel.DocumentPath,
) (*requestModel.PortabilityRequest, error) {
	var req requestModel.PortabilityRequest
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_key = ?", path.RequestID, path.OwnerKey).
		First(&req).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestModel.ErrRequestNotFound
		}
		return nil, err
	}

	req.ApplyDisplayDefaults()
	return &req, nil
}

// UpdateStatus applies the status transition as one partial update.
// Last-write-wins: no read-modify-write guard is attempted here.
func (r *repository) UpdateStatus(
	ctx context.Context,
	path requestModel.DocumentPath,
	status requestModel.Status,
	processedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&requestModel.PortabilityRequest{}).
		Where("id = ? AND owner_key = ?", path.RequestID, path.OwnerKey).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}
	return nil
}

// Create inserts a new request.
func (r *repository) Create(ctx context.Context, req *requestModel.PortabilityRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}
