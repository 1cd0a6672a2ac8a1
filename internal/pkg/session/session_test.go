package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

type failingStore struct {
	MemoryStore
	err error
}

func (s *failingStore) Clear(ctx context.Context) error {
	return s.err
}

func TestSession_Restore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		stored        string
		expectToken   bool
		expectCleared bool
	}{
		{name: "empty store", stored: "", expectToken: false},
		{name: "opaque token kept", stored: "12|Xv9sPq0aTn", expectToken: true},
		{name: "valid jwt kept", stored: signedToken(t, now.Add(time.Hour)), expectToken: true},
		{name: "expired jwt dropped", stored: signedToken(t, now.Add(-time.Minute)), expectToken: false, expectCleared: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(tt.stored)
			s := New(store)
			s.now = func() time.Time { return now }

			require.NoError(t, s.Restore(ctx))

			assert.Equal(t, tt.expectToken, s.IsAuthenticated())
			if tt.expectToken {
				assert.Equal(t, tt.stored, s.Token())
			}
			if tt.expectCleared {
				stored, _ := store.Load(ctx)
				assert.Empty(t, stored)
			}
		})
	}
}

func TestSession_TokenAndAuthenticatedNeverDiverge(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("")
	s := New(store)

	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.SetToken(ctx, "abc"))
	s.SetUser(&models.User{ID: 7, Name: "Rina"})
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "abc", s.Token())
	assert.Equal(t, int64(7), s.User().ID)

	stored, _ := store.Load(ctx)
	assert.Equal(t, "abc", stored)

	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	stored, _ = store.Load(ctx)
	assert.Empty(t, stored)
}

func TestSession_UserIsCopied(t *testing.T) {
	s := New(NewMemoryStore(""))
	u := &models.User{ID: 1, Name: "Budi"}
	s.SetUser(u)

	u.Name = "changed"
	assert.Equal(t, "Budi", s.User().Name)

	got := s.User()
	got.Name = "changed again"
	assert.Equal(t, "Budi", s.User().Name)
}

func TestSession_ExpireNotifiesSubscribers(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore(""))
	require.NoError(t, s.SetToken(ctx, "abc"))

	var first, second int32
	s.OnExpired(func() { atomic.AddInt32(&first, 1) })
	unsubscribe := s.OnExpired(func() { atomic.AddInt32(&second, 1) })

	require.NoError(t, s.Expire(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, int32(1), atomic.LoadInt32(&first))
	assert.Equal(t, int32(1), atomic.LoadInt32(&second))

	unsubscribe()
	require.NoError(t, s.Expire(ctx))
	assert.Equal(t, int32(2), atomic.LoadInt32(&first))
	assert.Equal(t, int32(1), atomic.LoadInt32(&second))
}

func TestSession_ClearDropsMemoryEvenIfStoreFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{err: errors.New("disk full")}
	s := New(store)
	require.NoError(t, s.SetToken(ctx, "abc"))

	called := false
	s.OnExpired(func() { called = true })

	err := s.Expire(ctx)
	assert.EqualError(t, err, "disk full")
	assert.False(t, s.IsAuthenticated())
	assert.True(t, called)
}

func TestSession_ExpiresAt(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore(""))

	_, ok := s.ExpiresAt()
	assert.False(t, ok)

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	require.NoError(t, s.SetToken(ctx, signedToken(t, exp)))

	got, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	require.NoError(t, s.SetToken(ctx, "opaque"))
	_, ok = s.ExpiresAt()
	assert.False(t, ok)
}
