package ports

import "time"

type Clock interface {
	Now() time.Time
}

// TokenIssuer signs access tokens carrying the username and role claims.
type TokenIssuer interface {
	Issue(username string, roles []string) (string, error)
}
