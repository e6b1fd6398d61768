package handler

import (
	"errors"

	"careerease/internal/delivery/http/dto"
	"careerease/internal/delivery/http/middleware"
	"careerease/internal/pkg/response"
	"careerease/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OptionsHandler struct {
	uc usecase.CatalogUsecase
}

func NewOptionsHandler(uc usecase.CatalogUsecase) *OptionsHandler {
	return &OptionsHandler{uc: uc}
}

func (h *OptionsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/available-options", h.AvailableOptions)
	r.Get("/skills", h.Skills)
	r.Get("/locations", h.Locations)
}

func (h *OptionsHandler) AvailableOptions(c fiber.Ctx) error {
	opts, err := h.uc.AvailableOptions(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAvailableOptionsResponse(opts))
}

// Skills lists stored skills, fetching them from the skills API when none are stored.
func (h *OptionsHandler) Skills(c fiber.Ctx) error {
	items, err := h.uc.Skills(c.Context())
	if err != nil {
		return catalogError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillsResponse(items))
}

func (h *OptionsHandler) Locations(c fiber.Ctx) error {
	items, err := h.uc.Locations(c.Context())
	if err != nil {
		return catalogError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLocationsResponse(items))
}

// catalogError reports a failed upstream fetch as 503 and anything else as 500.
func catalogError(err error) error {
	if errors.Is(err, usecase.ErrInternal) {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
}
