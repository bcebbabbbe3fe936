package identity

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// KnownRoles lists the roles a user may be granted.
func KnownRoles() []string {
	return []string{RoleUser, RoleAdmin}
}

func IsKnownRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
