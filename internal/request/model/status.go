package model

import "fmt"

// Status is the lifecycle state of a portability request. PENDING is the
// initial state; Validated and Rejected are terminal. The mixed casing
// matches the values persisted by the submission flow and must not change.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusValidated Status = "Validated"
	StatusRejected  Status = "Rejected"
)

// ParseStatus validates and converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusValidated, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Valid reports whether the status is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusValidated, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is offered from this status.
func (s Status) Terminal() bool {
	return s == StatusValidated || s == StatusRejected
}

// ValidTransitionTarget reports whether an admin may transition a request
// into this status. Only Validated and Rejected are reachable through the
// dispatcher; everything else is an invalid transition.
func (s Status) ValidTransitionTarget() bool {
	return s == StatusValidated || s == StatusRejected
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
