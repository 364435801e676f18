package model

import (
	"fmt"

	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Role is the closed set of admin roles. Guest is the safe fallback for
// anonymous or unrecognized principals.
type Role string

const (
	RoleSuperAdmin    Role = "SuperAdmin"
	RoleProviderAdmin Role = "ProviderAdmin"
	RoleGuest         Role = "Guest"
)

// ParseRole validates and converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleProviderAdmin, RoleGuest:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleProviderAdmin, RoleGuest:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// AdminIdentity is the session-scoped identity attached to every request.
// Operator is meaningful only when Role is ProviderAdmin; SuperAdmin
// implicitly scopes to all four operators and Guest to none.
type AdminIdentity struct {
	PrincipalID string                `json:"principal_id"`
	Role        Role                  `json:"role"`
	Operator    requestModel.Operator `json:"operator,omitempty"`
	Anonymous   bool                  `json:"anonymous,omitempty"`
}

// Guest returns the safe fallback identity for a principal.
func Guest(principalID string) AdminIdentity {
	return AdminIdentity{
		PrincipalID: principalID,
		Role:        RoleGuest,
		Anonymous:   true,
	}
}

// IsAdmin reports whether the identity carries any admin role.
func (i AdminIdentity) IsAdmin() bool {
	return i.Role == RoleSuperAdmin || i.Role == RoleProviderAdmin
}

// TrackedOperators returns the operators analytics are computed for:
// all four for SuperAdmin, the scoped one for ProviderAdmin, none for Guest.
func (i AdminIdentity) TrackedOperators() []requestModel.Operator {
	switch i.Role {
	case RoleSuperAdmin:
		return requestModel.AllOperators()
	case RoleProviderAdmin:
		if i.Operator.Valid() {
			return []requestModel.Operator{i.Operator}
		}
		return nil
	default:
		return nil
	}
}
