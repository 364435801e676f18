package model

// TransitionRequest represents the request to transition a portability
// request into a terminal status.
type TransitionRequest struct {
	RequestID  string `json:"request_id"  binding:"required"`
	FullNumber string `json:"full_number" binding:"required"`
	NewStatus  string `json:"new_status"  binding:"required"`
}

// TransitionResponse represents the outcome of a successful transition.
type TransitionResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Status  Status `json:"status"`
}

// SnapshotResponse wraps a full snapshot of the request collection.
type SnapshotResponse struct {
	Requests []PortabilityRequest `json:"requests"`
	Total    int                  `json:"total"`
}

// ActionStateResponse exposes the in-flight state of a transition target.
type ActionStateResponse struct {
	Path   string `json:"path"`
	Phase  string `json:"phase"`
	Reason string `json:"reason,omitempty"`
}
