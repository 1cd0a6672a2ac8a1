package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{
		Host: "127.0.0.1",
		Port: 1,
	})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "absensi:token", "abc", time.Hour))
	assert.True(t, mr.Exists("absensi:token"))
	assert.Equal(t, time.Hour, mr.TTL("absensi:token"))

	val, err := client.Get(ctx, "absensi:token")
	require.NoError(t, err)
	assert.Equal(t, "abc", val)

	require.NoError(t, client.Delete(ctx, "absensi:token"))
	_, err = client.Get(ctx, "absensi:token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisClient_Get_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	mr.Close()

	_, err = client.Get(context.Background(), "absensi:token")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
