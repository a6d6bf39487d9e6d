// Package redis holds the Redis-backed session stores.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/internal/domain/service"
)

// NewClient builds the shared Redis client from config.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

type tokenBlacklist struct{ rdb *redis.Client }

// NewTokenBlacklist creates the Redis-backed revoked-token store. Entries
// expire together with the token they revoke.
func NewTokenBlacklist(rdb *redis.Client) service.TokenBlacklist {
	return &tokenBlacklist{rdb: rdb}
}

func key(jti string) string { return fmt.Sprintf("fieldbase:bl:%s", jti) }

func (b *tokenBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

func (b *tokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
