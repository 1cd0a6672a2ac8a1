package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/services/auth"
)

// Login authenticates against the backend and stores the returned token and user
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", auth.ErrInvalidCredentials)
	}

	resp, err := u.authGW.Login(ctx, req)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusUnprocessableEntity:
			return nil, fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, err)
		}
		return nil, err
	}

	if err := u.session.SetToken(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	u.session.SetUser(&resp.User)

	logger.Info("User logged in",
		logger.Int64("user_id", resp.User.ID),
		logger.String("username", resp.User.Username))

	return u.session.User(), nil
}

// Logout revokes the token on the backend and clears the local session.
// The backend call is best-effort: its failure is logged and the session is cleared anyway.
func (u *AuthUC) Logout(ctx context.Context) error {
	if u.session.IsAuthenticated() {
		if err := u.authGW.Logout(ctx); err != nil {
			logger.Warn("Backend logout failed, clearing local session anyway", logger.Err(err))
		}
	}

	if err := u.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser fetches the logged in user and refreshes the cached copy
func (u *AuthUC) CurrentUser(ctx context.Context) (*models.User, error) {
	if !u.session.IsAuthenticated() {
		return nil, auth.ErrNotAuthenticated
	}

	user, err := u.authGW.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	u.session.SetUser(user)
	return u.session.User(), nil
}
