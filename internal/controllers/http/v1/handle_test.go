package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-advisor/internal/models"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/httpserver"
	"weather-advisor/pkg/logger"
)

type mockWeatherService struct {
	report models.WeatherReport
	err    error
	cities []string
}

func (m *mockWeatherService) FetchReport(_ context.Context, city string) (models.WeatherReport, error) {
	m.cities = append(m.cities, city)
	if m.err != nil {
		return models.WeatherReport{}, m.err
	}
	report := m.report
	report.City = city
	return report, nil
}

func newTestApp(service WeatherService) *fiber.App {
	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      "test-app",
		ReadTimeout:  5,
		WriteTimeout: 5,
		IdleTimeout:  5,
	})
	NewRouter(app, service, logger.NewZapLogger("test-app"))
	return app
}

func postWeather(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/weather", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func hotDayReport() models.WeatherReport {
	return models.WeatherReport{
		Current: models.WeatherReading{
			Temperature: 32,
			Humidity:    35,
			Pressure:    1009,
			WindSpeed:   2.1,
			Description: "sunny",
			Icon:        "01d",
		},
		Forecast: []models.ForecastDay{
			{Date: time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), Temperature: 31.25, Description: "clear sky", Icon: "01d"},
			{Date: time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC), Temperature: 27.5, Description: "light rain", Icon: "10d"},
		},
	}
}

func TestHandleWeatherCall_Success(t *testing.T) {
	service := &mockWeatherService{report: hotDayReport()}
	app := newTestApp(service)

	resp, raw := postWeather(t, app, `{"city": "  Seville ", "health_conditions": ["asthma", "unknown"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	var body WeatherResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, []string{"Seville"}, service.cities)
	assert.Equal(t, hotDayReport().Current, body.CurrentWeather)

	require.Len(t, body.Forecast, 2)
	assert.Equal(t, "2025-07-25", body.Forecast[0].Date)
	assert.Equal(t, 31.25, body.Forecast[0].Temperature)
	assert.Equal(t, "2025-07-26", body.Forecast[1].Date)

	require.Len(t, body.HealthAdvice, 2)
	assert.Contains(t, body.HealthAdvice[0], "High temperature")
	assert.Contains(t, body.HealthAdvice[1], "Asthma Alert")

	assert.Equal(t, "excellent", body.PlaceRecommendations.Category)
	assert.NotEmpty(t, body.PlaceRecommendations.WeatherStatus)
	assert.Len(t, body.PlaceRecommendations.Categories, 2)
	assert.Contains(t, body.PlaceRecommendations.BestTime, "early morning")
	assert.Equal(t, "Enjoy your day with activities you love!", body.ActivityRecommendation)
	assert.Equal(t, 80, body.WeatherScore)
}

func TestHandleWeatherCall_ResponseShape(t *testing.T) {
	report := hotDayReport()
	report.Current.Temperature = 21
	app := newTestApp(&mockWeatherService{report: report})

	resp, raw := postWeather(t, app, `{"city": "Lisbon"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, key := range []string{"current_weather", "forecast", "health_advice", "place_recommendations", "activity_recommendation"} {
		assert.Contains(t, body, key)
	}
	assert.JSONEq(t, `[]`, string(body["health_advice"]))

	var current map[string]any
	require.NoError(t, json.Unmarshal(body["current_weather"], &current))
	for _, key := range []string{"temperature", "humidity", "pressure", "wind_speed", "description", "icon"} {
		assert.Contains(t, current, key)
	}
}

func TestHandleWeatherCall_CityNotFound(t *testing.T) {
	service := &mockWeatherService{err: errors.Wrap(weather.ErrCityNotFound, "fetch current weather")}
	app := newTestApp(service)

	resp, raw := postWeather(t, app, `{"city": "Atlantis"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error": "City not found"}`, string(raw))
}

func TestHandleWeatherCall_UnexpectedErrorIsNotFound(t *testing.T) {
	app := newTestApp(&mockWeatherService{err: errors.New("boom")})

	resp, raw := postWeather(t, app, `{"city": "Paris"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error": "City not found"}`, string(raw))
}

func TestHandleWeatherCall_MalformedProviderPayloadIsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		current string
	}{
		{"empty object", `{}`},
		{"no conditions", `{"main": {"temp": 20, "humidity": 50, "pressure": 1010}, "wind": {"speed": 2}, "weather": []}`},
	}

	forecast := `{"cod":"200","list":[{"dt":1753455600,"main":{"temp":21},"weather":[{"description":"clear sky","icon":"01d"}]}]}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "/forecast") {
					w.Write([]byte(forecast))
					return
				}
				w.Write([]byte(tt.current))
			}))
			defer provider.Close()

			l := logger.NewZapLogger("test-app")
			repo, err := repositories.NewOpenWeatherMapRepository(provider.URL, "test-key", l, provider.Client())
			require.NoError(t, err)

			app := newTestApp(weather.NewWeatherService(repo, time.Second, l))

			resp, raw := postWeather(t, app, `{"city": "Oslo"}`)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"error": "City not found"}`, string(raw))
		})
	}
}

func TestHandleWeatherCall_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"city": `},
		{"missing city", `{"health_conditions": ["asthma"]}`},
		{"blank city", `{"city": "   "}`},
		{"city too long", `{"city": "` + strings.Repeat("a", 101) + `"}`},
		{"wrong type", `{"city": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockWeatherService{report: hotDayReport()}
			app := newTestApp(service)

			resp, raw := postWeather(t, app, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.NotEmpty(t, body.Error)
			assert.Empty(t, service.cities)
		})
	}
}

func TestHandleWeatherCall_MethodNotAllowed(t *testing.T) {
	app := newTestApp(&mockWeatherService{report: hotDayReport()})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	for _, path := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
