package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per session; every write refreshes the TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func Key(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	if !validSessionID(sessionID) {
		return ErrInvalidSession
	}
	k := Key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, k, key, value)
		p.Expire(ctx, k, s.ttl)
		return nil
	})
	return err
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	if !validSessionID(sessionID) {
		return "", false, ErrInvalidSession
	}
	v, err := s.client.HGet(ctx, Key(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}
