// Package entity contains the core business objects of the project.
package entity

// Role represents the role tag attached to an account. Roles are free-form
// strings carried into the session token; RoleVendedor is the default for
// registrations that do not specify one.
type Role string

const (
	// RoleVendedor is the non-privileged default role.
	RoleVendedor Role = "Vendedor"
	// RoleAdmin marks administrative accounts.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// OrDefault returns the role itself, or RoleVendedor when empty.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleVendedor
	}

	return r
}
