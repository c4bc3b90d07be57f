package handler

import (
	"isbuldum/internal/delivery/http/dto"
	"isbuldum/internal/delivery/http/middleware"
	"isbuldum/internal/pkg/response"
	"isbuldum/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FavoritesHandler struct {
	uc usecase.JobCardsUsecase
}

func NewFavoritesHandler(uc usecase.JobCardsUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

func (h *FavoritesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/favorites", h.HandleListFavorites)
}

func (h *FavoritesHandler) HandleListFavorites(c fiber.Ctx) error {
	views, err := h.uc.Favorites(c.Context(), middleware.IdentityFrom(c))
	if err != nil {
		return mapJobCardsError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobCardResponses(views))
}
