// Package session holds the authenticated user and bearer token shared by the API client.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// Session is the authentication state of the client. The authenticated flag is derived
// from the token so the two can never diverge.
type Session struct {
	mu        sync.RWMutex
	store     Store
	token     string
	user      *models.User
	listeners map[int]func()
	nextID    int
	now       func() time.Time
}

// New creates an empty session backed by store. Call Restore to seed it.
func New(store Store) *Session {
	return &Session{
		store:     store,
		listeners: make(map[int]func()),
		now:       time.Now,
	}
}

// Restore seeds the session from durable storage. A stored JWT that has already
// expired is dropped instead of being sent to the backend.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if token != "" && tokenExpired(token, s.now()) {
		logger.Info("Stored token has expired, discarding it")
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("failed to discard expired token: %w", err)
		}
		token = ""
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Token returns the current bearer token, or "" when logged out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged in user if it is known
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a token is present
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// ExpiresAt returns the exp claim of the token when it is a JWT
func (s *Session) ExpiresAt() (time.Time, bool) {
	return tokenExpiry(s.Token())
}

// SetToken persists the token and makes it current
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// SetUser stores the logged in user
func (s *Session) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// Clear logs the session out locally. Memory is cleared even if the store fails.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	return s.store.Clear(ctx)
}

// Expire clears the session after the backend rejected the token and
// notifies every OnExpired subscriber.
func (s *Session) Expire(ctx context.Context) error {
	err := s.Clear(ctx)

	s.mu.RLock()
	listeners := make([]func(), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
	return err
}

// OnExpired registers fn to run whenever the session expires. The returned
// function removes the subscription.
func (s *Session) OnExpired(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		// opaque token, e.g. a personal access token
		return time.Time{}, false
	}

	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case json.Number:
		v, err := exp.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(v, 0), true
	default:
		return time.Time{}, false
	}
}

func tokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	return ok && !now.Before(exp)
}
