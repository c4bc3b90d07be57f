package handler

import (
	"context"
	"time"

	"isbuldum/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler takes the dependencies to probe, keyed by the name shown
// in the response. Stores running in memory are simply not listed.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	out := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			out[name] = "down"
			status = fiber.StatusServiceUnavailable
			continue
		}
		out[name] = "up"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy", out)
	}
	return response.Success(c, status, response.MessageOK, out)
}
