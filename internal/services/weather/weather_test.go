package weather_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-advisor/internal/models"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/logger"
)

// MockRepository implements WeatherRepository for testing
type MockRepository struct {
	current       models.WeatherReading
	forecast      []models.ForecastDay
	currentErr    error
	forecastErr   error
	delay         time.Duration
	currentCalls  atomic.Int32
	forecastCalls atomic.Int32
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) wait(ctx context.Context) error {
	if m.delay == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
		return nil
	}
}

func (m *MockRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error) {
	m.currentCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return models.WeatherReading{}, err
	}
	if m.currentErr != nil {
		return models.WeatherReading{}, m.currentErr
	}
	return m.current, nil
}

func (m *MockRepository) FetchForecast(ctx context.Context, city string) ([]models.ForecastDay, error) {
	m.forecastCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	return m.forecast, nil
}

func sampleForecast() []models.ForecastDay {
	return []models.ForecastDay{
		{Date: time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), Temperature: 22, Description: "clear sky", Icon: "01d"},
		{Date: time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC), Temperature: 19, Description: "light rain", Icon: "10d"},
	}
}

func TestWeatherService_FetchReport_Success(t *testing.T) {
	repo := &MockRepository{
		current:  models.WeatherReading{Temperature: 22, Humidity: 40, Description: "clear sky", Icon: "01d"},
		forecast: sampleForecast(),
	}
	service := weather.NewWeatherService(repo, time.Second, logger.NewZapLogger("test-app"))

	report, err := service.FetchReport(context.Background(), "Venice")
	require.NoError(t, err)

	assert.Equal(t, "Venice", report.City)
	assert.Equal(t, repo.current, report.Current)
	assert.Equal(t, repo.forecast, report.Forecast)
	assert.Equal(t, int32(1), repo.currentCalls.Load())
	assert.Equal(t, int32(1), repo.forecastCalls.Load())
}

func TestWeatherService_FetchReport_FailuresBecomeNotFound(t *testing.T) {
	tests := []struct {
		name string
		repo *MockRepository
	}{
		{"unknown city", &MockRepository{currentErr: repositories.ErrCityNotFound, forecastErr: repositories.ErrCityNotFound}},
		{"current fails", &MockRepository{currentErr: errors.New("connection refused"), forecast: sampleForecast()}},
		{"forecast fails", &MockRepository{forecastErr: repositories.ErrUpstream}},
		{"empty forecast", &MockRepository{forecast: []models.ForecastDay{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := weather.NewWeatherService(tt.repo, time.Second, logger.NewZapLogger("test-app"))

			report, err := service.FetchReport(context.Background(), "Atlantis")
			require.Error(t, err)
			assert.ErrorIs(t, err, weather.ErrCityNotFound)
			assert.Equal(t, models.WeatherReport{}, report)
		})
	}
}

func TestWeatherService_FetchReport_Timeout(t *testing.T) {
	repo := &MockRepository{
		current:  models.WeatherReading{Temperature: 22},
		forecast: sampleForecast(),
		delay:    500 * time.Millisecond,
	}
	service := weather.NewWeatherService(repo, 20*time.Millisecond, logger.NewZapLogger("test-app"))

	start := time.Now()
	_, err := service.FetchReport(context.Background(), "Venice")

	assert.ErrorIs(t, err, weather.ErrCityNotFound)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestWeatherService_FetchReport_CallerCancellation(t *testing.T) {
	repo := &MockRepository{forecast: sampleForecast(), delay: 200 * time.Millisecond}
	service := weather.NewWeatherService(repo, time.Second, logger.NewZapLogger("test-app"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.FetchReport(ctx, "Venice")
	assert.ErrorIs(t, err, weather.ErrCityNotFound)
}

func TestNewWeatherService_DefaultTimeout(t *testing.T) {
	repo := &MockRepository{current: models.WeatherReading{Temperature: 1}, forecast: sampleForecast()}
	service := weather.NewWeatherService(repo, 0, logger.NewZapLogger("test-app"))

	_, err := service.FetchReport(context.Background(), "Venice")
	assert.NoError(t, err)
}

func TestWeatherService_FetchReport_LogLevelByCause(t *testing.T) {
	tests := []struct {
		name      string
		repo      *MockRepository
		wantLevel string
	}{
		{"unknown city", &MockRepository{currentErr: repositories.ErrCityNotFound, forecast: sampleForecast()}, "warn"},
		{"provider outage", &MockRepository{currentErr: repositories.ErrUpstream, forecast: sampleForecast()}, "error"},
		{"malformed payload", &MockRepository{forecastErr: repositories.ErrMalformedResponse}, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.New(logger.Options{AppName: "test-app", Level: "warn"}, &buf)
			service := weather.NewWeatherService(tt.repo, time.Second, l)

			_, err := service.FetchReport(context.Background(), "Atlantis")
			require.ErrorIs(t, err, weather.ErrCityNotFound)

			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "Atlantis", line["city"])
		})
	}
}
