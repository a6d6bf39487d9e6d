package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sue-zadeh/fieldbase/internal/infrastructure/redis"
)

func TestTokenBlacklist(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	blacklist := redis.NewTokenBlacklist(client)
	ctx := context.Background()

	revoked, err := blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, blacklist.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	// An already-expired token needs no entry at all.
	require.NoError(t, blacklist.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = blacklist.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)

	// Entries fall out once the token itself would have expired.
	s.FastForward(2 * time.Hour)
	revoked, err = blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)
}
