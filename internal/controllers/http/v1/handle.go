package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-advisor/internal/models"
	"weather-advisor/internal/services/advisor"
	"weather-advisor/pkg/httpserver"
)

const errCityNotFound = "City not found"

// WeatherRequest is the body of POST /api/weather.
type WeatherRequest struct {
	City             string   `json:"city" validate:"required,max=100" example:"London"`
	HealthConditions []string `json:"health_conditions" example:"asthma,allergies"`
}

// WeatherResponse represents the combined weather and advice response
type WeatherResponse struct {
	CurrentWeather         models.WeatherReading      `json:"current_weather"`
	Forecast               []ForecastDay              `json:"forecast"`
	HealthAdvice           []string                   `json:"health_advice"`
	PlaceRecommendations   models.PlaceRecommendation `json:"place_recommendations"`
	ActivityRecommendation string                     `json:"activity_recommendation" example:"Great weather! Perfect for a walk, outdoor sports, or cycling."`
	WeatherScore           int                        `json:"weather_score" example:"100"`
	ActivityScore          int                        `json:"activity_score" example:"90"`
}

// ForecastDay represents a single day's weather summary
type ForecastDay struct {
	Date        string  `json:"date" example:"2025-07-25"`
	Temperature float64 `json:"temperature" example:"21.7"`
	Description string  `json:"description" example:"clear sky"`
	Icon        string  `json:"icon" example:"01d"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City not found"`
}

// GetWeatherAdvice godoc
// @Summary Get weather with health and activity advice
// @Description Fetches current weather and a 7-day forecast for a city and derives health advice, place recommendations and an activity suggestion
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body WeatherRequest true "City and optional health conditions (asthma, allergies, heart_condition)"
// @Success 200 {object} WeatherResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid body or missing city"
// @Failure 404 {object} ErrorResponse "City not found"
// @Router /api/weather [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/api/weather" -H "Content-Type: application/json" -d '{"city":"London","health_conditions":["asthma"]}'
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	var req WeatherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	req.City = strings.TrimSpace(req.City)
	if err := r.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing or invalid parameter: city",
		})
	}

	report, err := r.service.FetchReport(c.UserContext(), req.City)
	if err != nil {
		r.l.Warning("city lookup failed", map[string]any{
			"city":      req.City,
			"requestId": c.Locals(httpserver.RequestIDKey),
			"err":       err.Error(),
		})

		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: errCityNotFound,
		})
	}

	advice := advisor.Advise(report.Current, req.HealthConditions)

	r.l.Debug("weather advice computed", map[string]any{
		"city":         req.City,
		"requestId":    c.Locals(httpserver.RequestIDKey),
		"weatherScore": advice.WeatherScore,
		"category":     advice.Places.Category,
	})

	// Convert the forecast to the documented response format
	forecast := make([]ForecastDay, len(report.Forecast))
	for i, day := range report.Forecast {
		forecast[i] = ForecastDay{
			Date:        day.Date.Format(models.DateLayout),
			Temperature: day.Temperature,
			Description: day.Description,
			Icon:        day.Icon,
		}
	}

	return c.JSON(WeatherResponse{
		CurrentWeather:         report.Current,
		Forecast:               forecast,
		HealthAdvice:           advice.HealthAdvice,
		PlaceRecommendations:   advice.Places,
		ActivityRecommendation: advice.ActivitySuggestion,
		WeatherScore:           advice.WeatherScore,
		ActivityScore:          advice.ActivityScore,
	})
}
