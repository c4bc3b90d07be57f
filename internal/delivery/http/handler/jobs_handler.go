package handler

import (
	"bytes"
	"errors"
	"log"
	"strconv"

	"isbuldum/internal/delivery/http/dto"
	"isbuldum/internal/delivery/http/middleware"
	"isbuldum/internal/favorites"
	"isbuldum/internal/jobcard"
	"isbuldum/internal/pkg/response"
	"isbuldum/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc     usecase.JobCardsUsecase
	logger *log.Logger
}

type openJobRequest struct {
	ScrollY     int    `json:"scroll_y"`
	CurrentPath string `json:"current_path"`
}

func NewJobsHandler(uc usecase.JobCardsUsecase, logger *log.Logger) *JobsHandler {
	return &JobsHandler{uc: uc, logger: logger}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListJobs)
	r.Get("/jobs/:id", h.HandleGetJob)
	r.Post("/jobs/:id/open", h.HandleOpenJob)
	r.Post("/jobs/:id/favorite", h.HandleToggleFavorite)
}

// RegisterPages mounts the server-rendered listing page.
func (h *JobsHandler) RegisterPages(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleJobsPage)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}

	views, err := h.uc.List(c.Context(), middleware.IdentityFrom(c), params)
	if err != nil {
		return mapJobCardsError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobCardResponses(views))
}

func (h *JobsHandler) HandleJobsPage(c fiber.Ctx) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}

	views, err := h.uc.List(c.Context(), middleware.IdentityFrom(c), params)
	if err != nil {
		return mapJobCardsError(err)
	}

	var buf bytes.Buffer
	if err := jobcard.Render(&buf, jobcard.ParseLayout(c.Query("layout")), views); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	card, err := h.uc.Card(c.Context(), middleware.IdentityFrom(c), c.Params("id"))
	if err != nil {
		return mapJobCardsError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobCardResponse(card.View(c.Context())))
}

func (h *JobsHandler) HandleOpenJob(c fiber.Ctx) error {
	var req openJobRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
	}
	if req.ScrollY < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	card, err := h.uc.Card(c.Context(), middleware.IdentityFrom(c), c.Params("id"))
	if err != nil {
		return mapJobCardsError(err)
	}

	to := card.Open(c.Context(), middleware.SessionID(c), req.ScrollY, req.CurrentPath)
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Redirect{To: to})
}

func (h *JobsHandler) HandleToggleFavorite(c fiber.Ctx) error {
	card, err := h.uc.Card(c.Context(), middleware.IdentityFrom(c), c.Params("id"))
	if err != nil {
		return mapJobCardsError(err)
	}

	out, err := card.ToggleFavorite(c.Context())
	if err != nil {
		if errors.Is(err, favorites.ErrInvalidJobID) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if h.logger != nil {
			h.logger.Printf("[Favorites] toggle failed job=%s err=%v", card.Listing().ID, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if out.Redirect != "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", response.Redirect{To: out.Redirect}, nil)
	}

	label := jobcard.LabelAddFavorite
	if out.Favorite {
		label = jobcard.LabelRemoveFavorite
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FavoriteToggleResponse{
		JobID:    card.Listing().ID,
		Favorite: out.Favorite,
		Label:    label,
	})
}

func pageParams(c fiber.Ctx) (usecase.JobCardsParams, error) {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return usecase.JobCardsParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return usecase.JobCardsParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return usecase.JobCardsParams{Limit: limit, Offset: offset}, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobCardsError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrLoginRequired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", response.Redirect{To: jobcard.LoginPath}, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
