package routes

import (
	"careerease/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry mounts every handler at the root. Routing is non-strict, so each
// path also answers with a trailing slash.
type Registry struct {
	health         *handler.HealthHandler
	recommendation *handler.RecommendationHandler
	assessment     *handler.AssessmentHandler
	options        *handler.OptionsHandler
}

func NewRegistry(health *handler.HealthHandler, recommendation *handler.RecommendationHandler, assessment *handler.AssessmentHandler, options *handler.OptionsHandler) *Registry {
	return &Registry{
		health:         health,
		recommendation: recommendation,
		assessment:     assessment,
		options:        options,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.recommendation != nil {
		r.recommendation.RegisterRoutes(app)
	}
	if r.assessment != nil {
		r.assessment.RegisterRoutes(app)
	}
	if r.options != nil {
		r.options.RegisterRoutes(app)
	}
}
