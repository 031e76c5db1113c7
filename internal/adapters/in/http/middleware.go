package http

import (
	"fmt"

	"orderlifecycle/internal/core/domain/model/actor"

	"github.com/labstack/echo/v4"
)

// UserTypeHeader carries the caller's role.
const UserTypeHeader = "X-UserType"

const roleContextKey = "actor_role"

// requireRole rejects callers whose X-UserType is missing, unknown or not one of allowed.
func (s *Server) requireRole(operation string, allowed ...actor.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(UserTypeHeader)
			role, err := actor.ParseRole(header)
			if err != nil || !role.IsOneOf(allowed...) {
				return s.fail(c, operation, fmt.Errorf("%w: %q", ErrRoleNotAllowed, header))
			}
			c.Set(roleContextKey, role)
			return next(c)
		}
	}
}

func roleFrom(c echo.Context) actor.Role {
	role, _ := c.Get(roleContextKey).(actor.Role)
	return role
}
