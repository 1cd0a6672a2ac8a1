package mockapi

import (
	"net/http"
	"strings"

	jwtpkg "github.com/dmpt/absensi/internal/pkg/jwt"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/middleware"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/labstack/echo/v4"
)

// Login checks the credentials and issues a bearer token. The response is not enveloped.
// Bad credentials answer 422 so clients do not mistake them for an expired session.
func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return utils.UnprocessableResponse(c, "Username dan password wajib diisi")
	}

	user, ok := h.store.Authenticate(req.Username, req.Password)
	h.metrics.RecordLogin(ok)
	if !ok {
		logger.Warn("Login rejected", logger.String("username", req.Username), logger.String("client_ip", c.RealIP()))
		return utils.UnprocessableResponse(c, "Username atau password salah")
	}

	token, _, err := jwtpkg.GenerateToken(&user, h.jwt)
	if err != nil {
		logger.Error("Failed to sign token", logger.Int64("user_id", user.ID), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	logger.Info("User logged in", logger.Int64("user_id", user.ID))
	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout revokes the presented token
func (h *Handler) Logout(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextClaims).(*jwtpkg.Claims)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	until := h.now()
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	h.store.Revoke(claims.ID, until)

	logger.Info("User logged out", logger.Int64("user_id", claims.UserID))
	return respondOK(c, "Berhasil keluar", nil)
}

// CurrentUser returns the authenticated user
func (h *Handler) CurrentUser(c echo.Context) error {
	user, found := h.currentUser(c)
	if !found {
		return utils.UnauthorizedResponse(c, "")
	}
	return respondOK(c, "User retrieved successfully", user)
}
