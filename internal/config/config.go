package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Session  SessionConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	// SeedListings writes sample listings into an empty store at startup.
	SeedListings bool
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
	MigrateOnStart      bool
}

// Enabled reports whether any connection setting was given. Without one the
// service runs on in-memory stores.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	CacheTTL time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

type JWTConfig struct {
	AccessSecret string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	SweepSpec  string
	Secure     bool
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the process environment. A .env file in the working directory
// is applied first when present; real environment variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[Config] .env not loaded: %v", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{}

	var missing, invalid []string
	opt := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	req := func(key string) string {
		v := opt(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optInt32 := func(key string) int32 {
		raw := opt(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return int32(v)
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),

		SeedListings: optBool("APP_SEED_LISTINGS", false),
	}

	cfg.Database = DatabaseConfig{
		URL:                 opt("DATABASE_URL"),
		Host:                opt("DB_HOST"),
		Port:                optDefault("DB_PORT", "5432"),
		Name:                opt("DB_NAME"),
		User:                opt("DB_USER"),
		Password:            opt("DB_PASSWORD"),
		SSLMode:             optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout:      optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:        optInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:        optInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime: optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime: optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		MigrateOnStart:      optBool("DB_MIGRATE_ON_START", true),
	}

	cfg.Redis = RedisConfig{
		URL:      opt("REDIS_URL"),
		Host:     opt("REDIS_HOST"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		CacheTTL: optDuration("REDIS_TTL", 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_ACCESS_SECRET"),
	}

	cfg.Session = SessionConfig{
		CookieName: optDefault("SESSION_COOKIE_NAME", "isb_sid"),
		TTL:        optDuration("SESSION_TTL", 30*time.Minute),
		SweepSpec:  optDefault("SESSION_SWEEP_SPEC", "@every 5m"),
		Secure:     optBool("SESSION_COOKIE_SECURE", false),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
