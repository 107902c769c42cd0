// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the authorization role stored on an account and carried in session tokens.
type Role string

const (
	// RoleAdmin is available to both account kinds.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the default role of a candidate account.
	RoleUser Role = "USER"
	// RoleBusiness is the default role of a business account.
	RoleBusiness Role = "BUSINESS"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValidFor checks whether the role belongs to the role set of the given account kind.
func (r Role) IsValidFor(kind AccountKind) bool {
	return slices.Contains(kind.Roles(), r)
}

// AccountKind partitions accounts into two independent populations with separate
// email namespaces.
type AccountKind string

const (
	AccountKindUser     AccountKind = "user"
	AccountKindBusiness AccountKind = "business"
)

// String returns the string representation of the AccountKind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the AccountKind is a known value.
func (k AccountKind) IsValid() bool {
	return k == AccountKindUser || k == AccountKindBusiness
}

// Roles returns the roles an account of this kind may hold.
func (k AccountKind) Roles() []Role {
	switch k {
	case AccountKindUser:
		return []Role{RoleAdmin, RoleUser}
	case AccountKindBusiness:
		return []Role{RoleAdmin, RoleBusiness}
	default:
		return nil
	}
}

// DefaultRole is the role assigned at signup when none is requested.
func (k AccountKind) DefaultRole() Role {
	if k == AccountKindBusiness {
		return RoleBusiness
	}

	return RoleUser
}
