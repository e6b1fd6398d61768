package handler

import (
	"errors"

	"careerease/internal/delivery/http/dto"
	"careerease/internal/delivery/http/middleware"
	"careerease/internal/domain/matching"
	"careerease/internal/pkg/response"
	"careerease/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const messageNoJobsFound = "No jobs found for the specified location"

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend-jobs", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.YearsOfExperience == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "years_of_experience is required", nil, nil)
	}

	res, err := h.uc.Recommend(c.Context(), req.Profile())
	if err != nil {
		return mapRecommendationError(err)
	}
	if !res.Found {
		return response.Success(c, fiber.StatusOK, messageNoJobsFound, dto.NewRecommendJobsResponse(nil))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendJobsResponse(res.Jobs))
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile: skills and career_goals are required, years_of_experience must not be negative", nil, err)
	case errors.Is(err, matching.ErrEmbeddingUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
