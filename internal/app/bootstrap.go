package app

import (
	"fmt"
	"strings"

	"careerease/internal/config"
	"careerease/internal/delivery/http/handler"
	"careerease/internal/delivery/http/middleware"
	"careerease/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// closes the database and cache.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(cors.New(corsConfig(c.Config.App.CORSOrigins)))
	app.Use(middleware.NewAccessLogMiddleware(c.Logger, "/health").Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func corsConfig(origins []string) cors.Config {
	credentials := true
	for _, o := range origins {
		if o == "*" {
			credentials = false
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: credentials,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions},
	}
}

func registerRoutes(app *fiber.App, c *Container) {
	routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewRecommendationHandler(c.Recommendation),
		handler.NewAssessmentHandler(c.Assessment),
		handler.NewOptionsHandler(c.Catalog),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
