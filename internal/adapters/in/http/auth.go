package http

import (
	"log/slog"
	"strings"

	"haul/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

const principalKey = "haul.principal"

// authenticate stores the caller named by a valid bearer token on the context.
// Requests without a valid token continue as anonymous; each route decides
// whether that is enough.
func authenticate(parser TokenParser, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if ok && raw != "" {
				p, err := parser.Parse(strings.TrimSpace(raw))
				if err != nil {
					logger.DebugContext(c.Request().Context(), "Rejected access token", "error", err)
				} else {
					c.Set(principalKey, p)
				}
			}
			return next(c)
		}
	}
}

// principal returns the caller, or the anonymous principal.
func principal(c echo.Context) identity.Principal {
	p, _ := c.Get(principalKey).(identity.Principal)
	return p
}
