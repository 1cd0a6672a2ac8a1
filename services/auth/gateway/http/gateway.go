package gateway_http

import (
	"context"
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// HTTPGateway implements auth.AuthGW against the backend REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the auth service
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// Login exchanges credentials for a bearer token
func (g *HTTPGateway) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := g.client.PostRaw(ctx, constants.PathLogin, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response has no token")
	}
	return &resp, nil
}

// Logout revokes the current token on the backend
func (g *HTTPGateway) Logout(ctx context.Context) error {
	if _, err := g.client.Post(ctx, constants.PathLogout, nil, nil); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// CurrentUser fetches the user owning the current token
func (g *HTTPGateway) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := g.client.Get(ctx, constants.PathUser, &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}
