package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ResetStore keeps one-time password reset codes keyed by email.
type ResetStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume checks the code and deletes it on a match so it cannot be
	// replayed.
	Consume(ctx context.Context, email, code string) (bool, error)
}

type resetStore struct{ rdb *goredis.Client }

// NewResetStore creates the Redis-backed reset code store.
func NewResetStore(rdb *goredis.Client) ResetStore {
	return &resetStore{rdb: rdb}
}

func resetKey(email string) string { return fmt.Sprintf("fieldbase:reset:%s", email) }

func (s *resetStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, resetKey(email), code, ttl).Err()
}

func (s *resetStore) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, resetKey(email)).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	return true, s.rdb.Del(ctx, resetKey(email)).Err()
}
