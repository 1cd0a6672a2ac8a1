package middleware

import (
	"strings"

	jwtpkg "github.com/dmpt/absensi/internal/pkg/jwt"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID  = "user_id"
	ContextTokenID = "token_id"
	ContextClaims  = "claims"
)

// RevocationChecker reports whether a token id was revoked by logout
type RevocationChecker interface {
	IsRevoked(tokenID string) bool
}

// JWTAuthMiddleware creates a middleware for JWT authentication. revoked may be nil.
func JWTAuthMiddleware(config models.JWTConfig, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "")
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return utils.UnauthorizedResponse(c, "")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if revoked != nil && revoked.IsRevoked(claims.ID) {
				return utils.UnauthorizedResponse(c, "")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextTokenID, claims.ID)
			c.Set(ContextClaims, claims)

			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by JWTAuthMiddleware
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextUserID).(int64)
	return id, ok
}
