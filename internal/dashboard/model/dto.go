// Package model provides data transfer objects for the dashboard module.
package model

import (
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// OperatorBuckets groups one operator's requests for the SuperAdmin view:
// PENDING where the operator is source, and Validated where it is source.
type OperatorBuckets struct {
	Outgoing  []requestModel.PortabilityRequest `json:"outgoing"`
	Validated []requestModel.PortabilityRequest `json:"validated"`
}

// Buckets is the role-dependent partition of the request list.
//
// For ProviderAdmin the three flat buckets are pairwise disjoint:
// outgoing (source==scope, PENDING, action required), incoming
// (target==scope, PENDING, monitoring only) and validatedIncoming
// (target==scope, Validated, historical). For SuperAdmin the per-operator
// groups are populated and the flat outgoing list carries all PENDING
// requests regardless of source. Rejected requests are never surfaced to
// SuperAdmin; Guests see everything empty.
type Buckets struct {
	Outgoing          []requestModel.PortabilityRequest          `json:"outgoing"`
	Incoming          []requestModel.PortabilityRequest          `json:"incoming"`
	ValidatedIncoming []requestModel.PortabilityRequest          `json:"validatedIncoming"`
	SuperAdmin        map[requestModel.Operator]*OperatorBuckets `json:"superAdmin"`
}

// DashboardResponse wraps the buckets for the authenticated identity.
type DashboardResponse struct {
	Role     string  `json:"role"`
	Operator string  `json:"operator,omitempty"`
	Buckets  Buckets `json:"buckets"`
}
