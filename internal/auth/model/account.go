// Package model provides domain models for the auth module.
package model

import "time"

// AdminAccount represents a credentialed admin principal.
// Matches the admin_accounts table schema.
type AdminAccount struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(255)"                                 json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_accounts_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"                        json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"                                             json:"created_at"`
}

// TableName specifies the table name for GORM.
func (AdminAccount) TableName() string {
	return "admin_accounts"
}

// AdminRoleRecord is the role-lookup entry keyed by the principal's
// identifier. Absence of a record means the principal is authenticated but
// unauthorized and must be signed out.
// Matches the admin_roles table schema.
type AdminRoleRecord struct {
	AccountID  string    `gorm:"primaryKey;column:account_id;type:varchar(255)" json:"account_id"`
	Role       string    `gorm:"column:role;type:varchar(32);not null"          json:"role"`
	Operator   string    `gorm:"column:operator;type:varchar(16)"               json:"operator,omitempty"`
	AssignedAt time.Time `gorm:"column:assigned_at;not null"                    json:"assigned_at"`
}

// TableName specifies the table name for GORM.
func (AdminRoleRecord) TableName() string {
	return "admin_roles"
}
