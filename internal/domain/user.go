package domain

import "time"

// Role represents a user's role in the system
type Role string

const (
	RoleGuest        Role = "guest"
	RoleReceptionist Role = "receptionist"
	RoleMaintenance  Role = "maintenance"
	RoleManager      Role = "manager"
)

// Roles lists every valid role.
var Roles = []Role{RoleGuest, RoleReceptionist, RoleMaintenance, RoleManager}

// StaffRoles are the roles held by hotel employees.
var StaffRoles = []Role{RoleReceptionist, RoleMaintenance, RoleManager}

// User represents a guest or staff account. Role-specific fields are nil for
// the other subtype.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Phone        *string
	Role         Role
	Enabled      bool
	LastLoginAt  *time.Time

	// Guest fields
	LoyaltyPoints *int
	Preferences   *string

	// Staff fields
	Department  *string
	Position    *string
	HireDate    *time.Time
	StaffStatus *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsStaff returns true for hotel employee roles.
func (u *User) IsStaff() bool {
	return u.Role == RoleReceptionist || u.Role == RoleMaintenance || u.Role == RoleManager
}

// CanWorkMaintenance returns true if maintenance requests may be assigned
// to the user.
func (u *User) CanWorkMaintenance() bool {
	return u.Role == RoleMaintenance || u.Role == RoleManager
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if Role(s) == r {
			return true
		}
	}
	return false
}
