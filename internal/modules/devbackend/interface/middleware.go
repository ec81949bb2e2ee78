package transport

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"restoBotClient/internal/shared/auth"
)

const claimsKey = "claims"

// requireStaff lets a request through only with a valid bearer token carrying the staff or
// admin role. The claims are stored on the context under claimsKey.
func requireStaff(validator auth.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := validator.Validate(auth.ExtractBearerToken(c.Request()))
			if err != nil {
				return err
			}
			if !claims.HasAnyRole(auth.RoleStaff, auth.RoleAdmin) {
				slog.Debug("devbackend staff route denied", slog.String("userId", claims.Subject), slog.Any("roles", claims.Roles))
				return fmt.Errorf("%w: staff or admin role required", auth.ErrForbidden)
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}
