package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"isbuldum/internal/config"
	"isbuldum/internal/delivery/http/handler"
	"isbuldum/internal/delivery/http/middleware"
	"isbuldum/internal/delivery/http/routes"
	"isbuldum/internal/seeder"
	"isbuldum/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap wires the container, starts background loops and returns the
// app with the function that releases everything.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.SeedListings {
		seed := seeder.ListingSeeder{}
		n, err := seed.Run(ctx, c.Documents)
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed %s: %w", seed.Name(), err)
		}
		logger.Printf("[App] seeder=%s written=%d", seed.Name(), n)
	}

	if err := c.Cache.InvalidateListings(ctx); err != nil {
		logger.Printf("[Cache] listing invalidation failed err=%v", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["postgres"] = c.DB
	}
	if c.Redis != nil {
		checks["redis"] = c.Cache
	}

	h := routes.Handlers{
		Health:    handler.NewHealthHandler(checks),
		Jobs:      handler.NewJobsHandler(c.JobCards, c.Logger),
		Favorites: handler.NewFavoritesHandler(c.JobCards),
		Session:   handler.NewSessionHandler(c.Sessions),
		Blog:      handler.NewBlogHandler(c.Submitter, c.Sessions, c.Publisher, c.Logger),
		WS:        ws.NewHandler(c.Hub, c.Logger),
	}

	routes.NewRegistry(
		h,
		middleware.NewAuthMiddleware(c.JWT),
		middleware.NewSessionMiddleware(c.Config.Session.CookieName, c.Config.Session.TTL, c.Config.Session.Secure),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
