package routes

import (
	"isbuldum/internal/delivery/http/handler"
	"isbuldum/internal/delivery/http/middleware"
	v1 "isbuldum/internal/delivery/http/routes/v1"
	"isbuldum/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health    *handler.HealthHandler
	Jobs      *handler.JobsHandler
	Favorites *handler.FavoritesHandler
	Session   *handler.SessionHandler
	Blog      *handler.BlogHandler
	WS        *ws.Handler
}

type Registry struct {
	h       Handlers
	auth    *middleware.AuthMiddleware
	session *middleware.SessionMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware, session *middleware.SessionMiddleware) *Registry {
	return &Registry{h: h, auth: auth, session: session}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)

	// Everything below is visitor-facing and needs the session and the
	// optional identity.
	app.Use(r.session.Middleware(), r.auth.Optional())
	r.registerPages(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.h.WS != nil {
		r.h.WS.RegisterRoutes(app)
	}
}

func (r *Registry) registerPages(app *fiber.App) {
	if r.h.Jobs == nil {
		return
	}
	r.h.Jobs.RegisterPages(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), v1.Handlers{
		Jobs:      r.h.Jobs,
		Favorites: r.h.Favorites,
		Session:   r.h.Session,
		Blog:      r.h.Blog,
	})
}

func RegisterV1(r fiber.Router, h v1.Handlers) {
	if r == nil {
		return
	}

	v1.Register(r, h)
}
