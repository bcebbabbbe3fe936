package identity

import "slices"

// Principal is the authenticated caller of an operation: the username and the
// role claims carried by its token. Restaurant management is not a claim; it
// is derived from the restaurant being accessed.
type Principal struct {
	Username string
	Roles    []string
}

func NewPrincipal(username string, roles ...string) Principal {
	return Principal{Username: username, Roles: roles}
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

func (p Principal) IsAnonymous() bool {
	return p.Username == ""
}
