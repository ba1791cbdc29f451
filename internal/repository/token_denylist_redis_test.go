package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/nextflix/internal/repository"
)

func setupDenylist(t *testing.T) (*repository.RedisTokenDenylist, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisTokenDenylist(client), srv
}

func TestRedisTokenDenylist(t *testing.T) {
	ctx := context.Background()

	t.Run("Отозванный токен помечается до истечения", func(t *testing.T) {
		denylist, srv := setupDenylist(t)

		require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

		revoked, err := denylist.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		ttl := srv.TTL("nextflix:revoked:jti-1")
		assert.Greater(t, ttl, 59*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)

		srv.FastForward(time.Hour + time.Second)
		revoked, err = denylist.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Неизвестный токен не отозван", func(t *testing.T) {
		denylist, _ := setupDenylist(t)

		revoked, err := denylist.IsRevoked(ctx, "unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Истекший токен не сохраняется", func(t *testing.T) {
		denylist, srv := setupDenylist(t)

		require.NoError(t, denylist.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
		assert.False(t, srv.Exists("nextflix:revoked:old"))
	})

	t.Run("Ошибка Redis", func(t *testing.T) {
		denylist, srv := setupDenylist(t)
		srv.Close()

		_, err := denylist.IsRevoked(ctx, "jti")
		assert.Error(t, err)
		assert.Error(t, denylist.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	})
}

func TestNewRedisClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное подключение", func(t *testing.T) {
		srv := miniredis.RunT(t)
		client, err := repository.NewRedisClient(ctx, "redis://"+srv.Addr()+"/0")
		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})

	t.Run("Некорректный URL", func(t *testing.T) {
		_, err := repository.NewRedisClient(ctx, "not-a-url")
		assert.Error(t, err)
	})
}
