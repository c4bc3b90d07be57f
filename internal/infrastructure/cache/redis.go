package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"isbuldum/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL  = 10 * time.Minute
	ListingsKey = "jobs:list:"
)

// Options builds client options from config. REDIS_URL wins over host/port.
func Options(cfg config.RedisConfig) (*redis.Options, error) {
	if u := strings.TrimSpace(cfg.URL); u != "" {
		opt, err := redis.ParseURL(u)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return opt, nil
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	}, nil
}

// Connect opens a client and pings it once.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Redis is a JSON cache over a client. A nil client turns every call into
// a miss so the service keeps working without Redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	r := &Redis{client: client, ttl: ttl, logger: logger}
	if client == nil && logger != nil {
		logger.Printf("[Cache] Redis unavailable, bypassing cache")
		r.warnedUnavailable.Store(true)
	}
	return r
}

func (r *Redis) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil && r.logger != nil {
			r.logger.Printf("[Cache] Redis delete error key=%s pattern=%s err=%v", k, pattern, err)
		}
	}
	return iter.Err()
}

// InvalidateListings drops every cached listing page.
func (r *Redis) InvalidateListings(ctx context.Context) error {
	return r.DeleteByPattern(ctx, ListingsKey+"*")
}
