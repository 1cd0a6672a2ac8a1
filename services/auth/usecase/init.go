package usecase

import (
	"github.com/dmpt/absensi/internal/pkg/session"
	"github.com/dmpt/absensi/services/auth"
)

type AuthUC struct {
	authGW  auth.AuthGW
	session *session.Session
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(authGW auth.AuthGW, sess *session.Session) *AuthUC {
	return &AuthUC{
		authGW:  authGW,
		session: sess,
	}
}
