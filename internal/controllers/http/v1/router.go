package http

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

// WeatherService is the part of the weather service the handlers depend on.
type WeatherService interface {
	FetchReport(ctx context.Context, city string) (models.WeatherReport, error)
}

type routes struct {
	service  WeatherService
	validate *validator.Validate
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService WeatherService,
	l *logger.Logger,
) {
	r := &routes{
		service:  weatherService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		l:        l,
	}

	// Swagger documentation, served from the spec registered by the docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group("/api")
	api.Post("/weather", r.handleWeatherCall)
}
