package authz

import "strings"

// Role is a workspace member's role. Roles form a total order:
// owner > admin > member > viewer.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// roleRanks assigns a rank to every defined role. A role absent from this
// map is unrecognised and compares below everything.
var roleRanks = map[Role]int{
	RoleOwner:  4,
	RoleAdmin:  3,
	RoleMember: 2,
	RoleViewer: 1,
}

// Roles lists every defined role, highest rank first.
func Roles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}

// IsValid reports whether r is one of the four defined roles.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// rank returns the role's rank, or 0 for an unrecognised role.
func (r Role) rank() int {
	return roleRanks[r]
}

// ParseRole converts a stored role string into a Role. It returns false
// for anything outside the four defined roles, including the empty string.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", false
	}
	return r, true
}
