package model

// LoginRequest represents the credentialed sign-in request.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful sign-in.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	Operator  string `json:"operator,omitempty"`
	ExpiresAt string `json:"expires_at"`
}

// AnonymousResponse represents the anonymous sign-in fallback.
type AnonymousResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// LogoutResponse confirms session teardown.
type LogoutResponse struct {
	Message string `json:"message"`
}
