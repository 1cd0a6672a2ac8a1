package auth

import (
	"context"
	"errors"

	"github.com/dmpt/absensi/internal/pkg/models"
)

var (
	// ErrInvalidCredentials is returned when the username or password is missing or rejected
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotAuthenticated is returned by operations that need a session when there is none
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	// Logout always clears the local session, even when the backend call fails
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}
