package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "nextflix:revoked:"

// RedisTokenDenylist хранит ID отозванных токенов до момента их естественного истечения.
type RedisTokenDenylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisTokenDenylist создает denylist поверх клиента Redis.
func NewRedisTokenDenylist(client *redis.Client) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client, now: time.Now}
}

// NewRedisClient создает клиента Redis по URL вида redis://host:port/db и проверяет соединение.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("некорректный REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка проверки соединения с Redis: %w", err)
	}
	return client, nil
}

// Revoke помечает токен отозванным. Уже истекшие токены не сохраняются.
func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("ошибка записи отозванного токена: %w", err)
	}
	return nil
}

// IsRevoked сообщает, был ли токен отозван.
func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка проверки отозванного токена: %w", err)
	}
	return n > 0, nil
}
