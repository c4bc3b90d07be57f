package handler

import (
	"strconv"

	"isbuldum/internal/delivery/http/dto"
	"isbuldum/internal/delivery/http/middleware"
	"isbuldum/internal/pkg/response"
	"isbuldum/internal/session"

	"github.com/gofiber/fiber/v3"
)

// SessionHandler hands back what a job card stored before navigating away.
type SessionHandler struct {
	sessions session.Store
}

func NewSessionHandler(sessions session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/session/restore", h.HandleRestore)
}

func (h *SessionHandler) HandleRestore(c fiber.Ctx) error {
	out := dto.SessionRestoreResponse{}
	if h.sessions == nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, out)
	}
	sid := middleware.SessionID(c)

	raw, ok, err := h.sessions.Get(c.Context(), sid, session.KeyScrollPosition)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if ok {
		if y, err := strconv.Atoi(raw); err == nil {
			out.ScrollY = &y
		}
	}

	path, ok, err := h.sessions.Get(c.Context(), sid, session.KeyPreviousPath)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if ok {
		out.PreviousPath = path
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
