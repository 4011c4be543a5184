package middleware

import (
	"net/http"
	"strings"

	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuth. Handlers read the acting user from these and
// pass it into usecases explicitly; nothing below the adapter layer looks at
// tokens or headers.
const (
	CtxUserID = "auth_user_id"
	CtxRole   = "auth_role"
)

func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := auth.ParseToken(strings.TrimPrefix(h, "Bearer "), key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin must run after JWTAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(CtxRole).(user.Role)
		if role != user.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}
		return next(c)
	}
}

// UserID returns the authenticated user id placed by JWTAuth.
func UserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(CtxUserID).(uint64)
	return id, ok
}
