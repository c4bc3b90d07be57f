package cache

import (
	"context"
	"testing"
	"time"

	"isbuldum/internal/config"
)

func TestRedis_BypassWithoutClient(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(nil, 0, nil)

	var out []string
	hit, err := r.GetJSON(ctx, "jobs:list:20:0", &out)
	if err != nil || hit {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "k", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := r.InvalidateListings(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if r.Ping(ctx) == nil {
		t.Fatalf("expected ping error without redis")
	}
	if r.Client() != nil {
		t.Fatalf("expected nil client")
	}
}

func TestOptions(t *testing.T) {
	opt, err := Options(config.RedisConfig{Host: "cache", Port: "6380", Password: "pw"})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opt.Addr != "cache:6380" || opt.Password != "pw" {
		t.Fatalf("unexpected options %+v", opt)
	}

	opt, err = Options(config.RedisConfig{URL: "redis://:secret@redis.internal:6379/2", Host: "ignored"})
	if err != nil {
		t.Fatalf("options from url: %v", err)
	}
	if opt.Addr != "redis.internal:6379" || opt.DB != 2 || opt.Password != "secret" {
		t.Fatalf("unexpected url options %+v", opt)
	}

	if _, err := Options(config.RedisConfig{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error")
	}
}
