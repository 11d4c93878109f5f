package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"weather-advisor/internal/models"
)

var (
	ErrCityNotFound   = errors.New("city not found")
	ErrUpstream       = errors.New("weather provider error")
	ErrNoForecastData = errors.New("no forecast data available")

	// ErrMalformedResponse wraps ErrUpstream: the provider answered 200 without a field we read.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrUpstream)
)

type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error)
	FetchForecast(ctx context.Context, city string) ([]models.ForecastDay, error)
}

// HTTPClient is satisfied by *http.Client and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CallObserver receives one event per provider call.
type CallObserver interface {
	ObserveProviderCall(endpoint, status string, d time.Duration)
}
