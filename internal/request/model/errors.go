package model

import "errors"

var (
	// ErrRequestNotFound indicates that the derived document path does not
	// resolve to an existing request. Commonly caused by malformed owner-key
	// derivation.
	ErrRequestNotFound = errors.New("portability request not found")
	// ErrInvalidTransition indicates an attempted status other than
	// Validated/Rejected, rejected before any store call.
	ErrInvalidTransition = errors.New("only Validated or Rejected status updates are allowed")
	// ErrPermissionDenied indicates the caller lacks write authorization at
	// the derived path.
	ErrPermissionDenied = errors.New("not authorized to update request at this path")
	// ErrTransitionInFlight indicates that a transition on the same target
	// has not settled yet. Only one outstanding mutation per target is
	// allowed.
	ErrTransitionInFlight = errors.New("a transition for this request is already in flight")
	// ErrInvalidRequestID indicates that the provided request ID is invalid.
	ErrInvalidRequestID = errors.New("request id is required")
	// ErrInvalidOwnerKey indicates a missing full number / owner key.
	ErrInvalidOwnerKey = errors.New("full number is required")
)
