package auth

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dmpt/absensi/services/auth AuthGW

// AuthGW defines the backend calls used by the auth usecase
type AuthGW interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}
