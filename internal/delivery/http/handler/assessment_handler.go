package handler

import (
	"errors"
	"strings"

	"careerease/internal/delivery/http/dto"
	"careerease/internal/delivery/http/middleware"
	"careerease/internal/domain/user"
	"careerease/internal/pkg/response"
	"careerease/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/user")
	grp.Post("/assessment", h.Submit)
	grp.Get("/preferences/:email", h.Preferences)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	var req dto.AssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.YearsOfExperience == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "years_of_experience is required", nil, nil)
	}

	id, err := h.uc.SaveAssessment(c.Context(), req.Input())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid assessment: name and a valid email are required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, "Assessment saved successfully", dto.AssessmentResponse{UserID: id})
}

func (h *AssessmentHandler) Preferences(c fiber.Ctx) error {
	email := strings.TrimSpace(c.Params("email"))

	p, err := h.uc.GetPreferences(c.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User preferences not found", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid email", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPreferencesResponse(p))
}
