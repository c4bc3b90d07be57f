package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"isbuldum/internal/blog"
	"isbuldum/internal/config"
	"isbuldum/internal/database"
	"isbuldum/internal/database/migration"
	dbpostgres "isbuldum/internal/database/postgres"
	"isbuldum/internal/favorites"
	"isbuldum/internal/infrastructure/cache"
	"isbuldum/internal/jobcard"
	"isbuldum/internal/notify"
	"isbuldum/internal/pkg/jwt"
	"isbuldum/internal/repository"
	"isbuldum/internal/session"
	"isbuldum/internal/usecase"
	"isbuldum/internal/ws"

	"github.com/codeGROOVE-dev/retry"
	"github.com/redis/go-redis/v9"
)

// Container owns the long-lived dependencies. Postgres and Redis are
// optional: without them documents, favorites and sessions live in memory.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Redis *redis.Client
	Cache *cache.Redis

	Documents repository.DocumentRepository
	Listings  repository.ListingRepository
	Favorites favorites.Store
	Sessions  session.Store
	JWT       jwt.Service
	Hub       *ws.Hub
	Publisher *ws.Publisher
	Submitter *blog.Submitter
	JobCards  *usecase.JobCards

	memSessions *session.MemoryStore
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	if err := c.connectDatabase(ctx); err != nil {
		return nil, err
	}
	if err := c.connectRedis(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	if c.DB != nil {
		c.Documents = repository.NewPostgresDocumentRepository(c.DB)
	} else {
		logger.Printf("[App] DATABASE_URL/DB_HOST not set, using in-memory documents")
		c.Documents = repository.NewMemoryDocumentRepository()
	}
	c.Listings = repository.NewDocumentListingRepository(c.Documents)

	c.Cache = cache.NewRedis(c.Redis, cfg.Redis.CacheTTL, logger)
	if c.Redis != nil {
		c.Favorites = favorites.NewRedisStore(c.Redis, logger)
		c.Sessions = session.NewRedisStore(c.Redis, cfg.Session.TTL)
	} else {
		c.Favorites = favorites.NewMemoryStore()
		c.memSessions = session.NewMemoryStore(cfg.Session.TTL, logger)
		if err := c.memSessions.StartSweeper(cfg.Session.SweepSpec); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("session sweeper: %w", err)
		}
		c.Sessions = c.memSessions
	}

	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, 0)
	c.Hub = ws.NewHub(logger)
	c.Publisher = ws.NewPublisher(c.Hub)
	c.Submitter = blog.NewSubmitter(c.Documents, notify.NewLogSink(logger), logger)
	c.JobCards = usecase.NewJobCardsUsecase(c.Listings, c.Cache, jobcard.Deps{
		Favorites: c.Favorites,
		Sessions:  c.Sessions,
		Logger:    logger,
	}, logger)

	return c, nil
}

func (c *Container) connectDatabase(ctx context.Context) error {
	if !c.Config.Database.Enabled() {
		return nil
	}

	var pool *dbpostgres.Pool
	err := withStartupRetry(ctx, c.Logger, "postgres", func() error {
		p, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	c.DB = pool
	c.Logger.Printf("[App] postgres connected")

	if c.Config.Database.MigrateOnStart {
		r := migration.Runner{Logger: c.Logger}
		if err := r.Run(ctx, pool.SQLDB()); err != nil {
			_ = pool.Close()
			c.DB = nil
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (c *Container) connectRedis(ctx context.Context) error {
	if !c.Config.Redis.Enabled() {
		return nil
	}

	var client *redis.Client
	err := withStartupRetry(ctx, c.Logger, "redis", func() error {
		cl, err := cache.Connect(ctx, c.Config.Redis)
		if err != nil {
			return err
		}
		client = cl
		return nil
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	c.Redis = client
	c.Logger.Printf("[App] redis connected")
	return nil
}

// withStartupRetry retries fn while a dependency is still coming up.
func withStartupRetry(ctx context.Context, logger *log.Logger, name string, fn func() error) error {
	return retry.Do(
		fn,
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.MaxJitter(250*time.Millisecond),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Printf("[App] %s not ready, retrying attempt=%d err=%v", name, n+1, err)
		}),
	)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.memSessions != nil {
		c.memSessions.Stop()
	}

	var firstErr error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
