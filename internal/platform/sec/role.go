// Copyright (c) 2026 Garagem. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Unrestricted access to the admin console
	RoleAdmin Role = "admin"

	// Default role for accounts provisioned at first login
	RoleUser Role = "user"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleUser:
		return 10
	default:
		return 0
	}
}
