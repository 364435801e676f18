// Package model provides domain models for the portability request module.
package model

import (
	"time"
)

// DisplayPlaceholder substitutes missing denormalized display fields.
const DisplayPlaceholder = "N/A"

// PortabilityRequest represents a request to port a phone number from one
// operator to another. Matches the portability_requests table schema.
// All fields except status and processed_at are owned by the external
// submission flow and are read-only to this service.
type PortabilityRequest struct {
	ID             string     `gorm:"primaryKey;column:id;type:varchar(255)"                                     json:"id"`
	OwnerKey       string     `gorm:"primaryKey;column:owner_key;type:varchar(32);index:idx_requests_owner_key"  json:"ownerKey"`
	FullNumber     string     `gorm:"column:full_number;type:varchar(32);not null"                               json:"fullNumber"`
	SourceProvider Operator   `gorm:"column:source_provider;type:varchar(16);not null;index:idx_requests_source" json:"sourceProvider"`
	TargetProvider Operator   `gorm:"column:target_provider;type:varchar(16);not null;index:idx_requests_target" json:"targetProvider"`
	Status         Status     `gorm:"column:status;type:varchar(16);not null;index:idx_requests_status"          json:"status"`
	SubmittedAt    *time.Time `gorm:"column:submitted_at"                                                        json:"submittedAt,omitempty"`
	ProcessedAt    *time.Time `gorm:"column:processed_at"                                                        json:"processedAt,omitempty"`
	Email          string     `gorm:"column:email;type:varchar(255)"                                             json:"email"`
	FirstName      string     `gorm:"column:first_name;type:varchar(255)"                                        json:"firstName"`
}

// TableName specifies the table name for GORM.
func (PortabilityRequest) TableName() string {
	return "portability_requests"
}

// SubmittedTime returns the submission timestamp for sort order. A missing
// or unresolvable timestamp sorts as the minimum value.
func (r *PortabilityRequest) SubmittedTime() time.Time {
	if r.SubmittedAt == nil {
		return time.Time{}
	}
	return *r.SubmittedAt
}

// SubmittedYear resolves the calendar year of submission. The second return
// value is false when the timestamp cannot be resolved; such records are
// excluded from year-bucketed analytics but still categorized by status.
func (r *PortabilityRequest) SubmittedYear() (int, bool) {
	if r.SubmittedAt == nil || r.SubmittedAt.IsZero() {
		return 0, false
	}
	return r.SubmittedAt.Year(), true
}

// ApplyDisplayDefaults fills missing display fields with the placeholder so
// that a single malformed record can never break a rendered view.
func (r *PortabilityRequest) ApplyDisplayDefaults() {
	if r.Email == "" {
		r.Email = DisplayPlaceholder
	}
	if r.FirstName == "" {
		r.FirstName = DisplayPlaceholder
	}
}
