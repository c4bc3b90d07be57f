package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":          "isbuldum",
		"APP_ENV":           "test",
		"HTTP_PORT":         "8080",
		"JWT_ACCESS_SECRET": "secret",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.Enabled() || cfg.Redis.Enabled() {
		t.Fatalf("stores must be disabled without settings")
	}
	if cfg.Session.CookieName != "isb_sid" || cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Redis.CacheTTL != 10*time.Minute || cfg.Database.SSLMode != "disable" || !cfg.Database.MigrateOnStart {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Redis, cfg.Database)
	}
}

func TestFromLookup_Missing(t *testing.T) {
	env := baseEnv()
	delete(env, "HTTP_PORT")
	delete(env, "JWT_ACCESS_SECRET")

	_, err := FromLookup(lookupFrom(env))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("error must name every missing key: %v", err)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	env := baseEnv()
	env["SESSION_TTL"] = "soon"
	env["DB_POOL_MAX_CONNS"] = "-3"

	_, err := FromLookup(lookupFrom(env))
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid env error, got %v", err)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	env := baseEnv()
	env["DATABASE_URL"] = "postgres://localhost/isbuldum"
	env["REDIS_HOST"] = "cache"
	env["SESSION_TTL"] = "1h"
	env["DB_POOL_MAX_CONNS"] = "8"

	cfg, err := FromLookup(lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.Database.Enabled() || !cfg.Redis.Enabled() {
		t.Fatalf("stores must be enabled")
	}
	if cfg.Session.TTL != time.Hour || cfg.Database.PoolMaxConns != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
