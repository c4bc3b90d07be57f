package v1

import (
	"isbuldum/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, favoritesHandler *handler.FavoritesHandler, sessionHandler *handler.SessionHandler) {
	if r == nil {
		return
	}
	if jobsHandler == nil {
		return
	}

	jobsHandler.RegisterRoutes(r)
	if favoritesHandler != nil {
		favoritesHandler.RegisterRoutes(r)
	}
	if sessionHandler != nil {
		sessionHandler.RegisterRoutes(r)
	}
}
