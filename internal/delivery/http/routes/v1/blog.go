package v1

import (
	"isbuldum/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterBlog(r fiber.Router, blogHandler *handler.BlogHandler) {
	if r == nil {
		return
	}
	if blogHandler == nil {
		return
	}

	blogHandler.RegisterRoutes(r)
}
