// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates the administrator role that approves registrations and transactions.
	RoleAdmin Role = "admin"
	// RoleStaff indicates a back-office staff role, provisioned directly by an admin.
	RoleStaff Role = "staff"
	// RoleAgent indicates a deposit agent role with its own wallet.
	RoleAgent Role = "agent"
	// RoleCustomer indicates a card customer role with its own wallet.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleAgent, RoleCustomer:
		return true
	default:
		return false
	}
}

// SelfRegisterable reports whether the role may be taken through public registration.
// Admin and staff accounts are provisioned, never self-registered.
func (r Role) SelfRegisterable() bool {
	return r == RoleAgent || r == RoleCustomer
}
