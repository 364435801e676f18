// Package repository provides data access layer for the auth module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
)

// Repository defines the interface for auth data access operations.
type Repository interface {
	// GetAccountByEmail finds an admin account by email.
	GetAccountByEmail(ctx context.Context, email string) (*authModel.AdminAccount, error)

	// GetRole looks up the role record for a principal. Absence is reported
	// as ErrRoleNotFound: authenticated but unauthorized.
	GetRole(ctx context.Context, accountID string) (*authModel.AdminRoleRecord, error)

	// CreateAccount inserts an admin account. Used by seeding and tests.
	CreateAccount(ctx context.Context, account *authModel.AdminAccount) error

	// AssignRole upserts the role record for a principal.
	AssignRole(ctx context.Context, record *authModel.AdminRoleRecord) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetAccountByEmail finds an admin account by email.
func (r *repository) GetAccountByEmail(ctx context.Context, email string) (*authModel.AdminAccount, error) {
	var account authModel.AdminAccount
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetRole looks up the role record for a principal.
func (r *repository) GetRole(ctx context.Context, accountID string) (*authModel.AdminRoleRecord, error) {
	var record authModel.AdminRoleRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrRoleNotFound
		}
		return nil, err
	}
	return &record, nil
}

// CreateAccount inserts an admin account.
func (r *repository) CreateAccount(ctx context.Context, account *authModel.AdminAccount) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(account).Error
}

// AssignRole upserts the role record for a principal.
func (r *repository) AssignRole(ctx context.Context, record *authModel.AdminRoleRecord) error {
	if record.AssignedAt.IsZero() {
		record.AssignedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Save(record).Error
}
