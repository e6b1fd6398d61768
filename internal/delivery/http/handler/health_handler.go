package handler

import (
	"context"
	"time"

	"careerease/internal/delivery/http/middleware"
	"careerease/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, "careerease API is running", nil)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"database": "up"})
}
