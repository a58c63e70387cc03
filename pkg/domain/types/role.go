package types

import "strings"

// Role represents a membership role name
type Role string

const (
	RoleGuest      Role = "guest"
	RoleReporter   Role = "reporter"
	RoleDeveloper  Role = "developer"
	RoleMaintainer Role = "maintainer"
	RoleOwner      Role = "owner"
)

// AccessLevel represents the upstream integer encoding of a role
type AccessLevel int

const (
	AccessLevelGuest      AccessLevel = 10
	AccessLevelReporter   AccessLevel = 20
	AccessLevelDeveloper  AccessLevel = 30
	AccessLevelMaintainer AccessLevel = 40
	AccessLevelOwner      AccessLevel = 50
)

// Roles returns all roles in their canonical declared order
func Roles() []Role {
	return []Role{RoleGuest, RoleReporter, RoleDeveloper, RoleMaintainer, RoleOwner}
}

// RoleNames returns the canonical role names for user-facing messages
func RoleNames() []string {
	roles := Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return names
}

// RoleFromString parses a role name case-insensitively
func RoleFromString(s string) (Role, bool) {
	r := Role(strings.ToLower(s))
	if !r.IsValid() {
		return "", false
	}
	return r, true
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleReporter, RoleDeveloper, RoleMaintainer, RoleOwner:
		return true
	default:
		return false
	}
}

// AccessLevel returns the upstream access level for the role.
// Owner maps to the highest level and is accepted by groups only.
func (r Role) AccessLevel() AccessLevel {
	switch r {
	case RoleGuest:
		return AccessLevelGuest
	case RoleReporter:
		return AccessLevelReporter
	case RoleDeveloper:
		return AccessLevelDeveloper
	case RoleMaintainer:
		return AccessLevelMaintainer
	case RoleOwner:
		return AccessLevelOwner
	default:
		return 0
	}
}

// Int returns the int representation
func (l AccessLevel) Int() int {
	return int(l)
}
