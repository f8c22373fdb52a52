// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a permission granted to an account and carried in access tokens.
type Role string

const (
	// RoleUser may search and manage its own saved leads.
	RoleUser Role = "user"
	// RoleAdmin operates the service.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the set of roles held by one account.
type Roles []Role

// Contains reports whether role is held. Admins hold every role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role) || slices.Contains(rs, RoleAdmin)
}

// ToStrings converts Roles to the claim representation.
func (rs Roles) ToStrings() []string {
	result := make([]string, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.String())
	}

	return result
}

// RolesFromStrings parses token claims, dropping unknown and repeated roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !slices.Contains(result, role) {
			result = append(result, role)
		}
	}

	return result
}
