package v1

import (
	"isbuldum/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Jobs      *handler.JobsHandler
	Favorites *handler.FavoritesHandler
	Session   *handler.SessionHandler
	Blog      *handler.BlogHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterJobs(r, h.Jobs, h.Favorites, h.Session)
	RegisterBlog(r, h.Blog)
}
