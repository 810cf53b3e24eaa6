package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAttemptStore backs the failure streak with Redis so the lockout
// survives restarts and is shared across instances.
type RedisAttemptStore struct {
	client *redis.Client
}

func NewRedisAttemptStore(client *redis.Client) *RedisAttemptStore {
	return &RedisAttemptStore{client: client}
}

func attemptKey(clientID string) string {
	return "login_attempts:" + clientID
}

func (s *RedisAttemptStore) RecordFailure(ctx context.Context, clientID string) (int, error) {
	key := attemptKey(clientID)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Every failure restarts the window, matching the memory store.
	if err := s.client.Expire(ctx, key, LockoutWindow).Err(); err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *RedisAttemptStore) Reset(ctx context.Context, clientID string) error {
	return s.client.Del(ctx, attemptKey(clientID)).Err()
}

func (s *RedisAttemptStore) LockedFor(ctx context.Context, clientID string) (time.Duration, error) {
	key := attemptKey(clientID)
	count, err := s.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if count < MaxLoginAttempts {
		return 0, nil
	}
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
