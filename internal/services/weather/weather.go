package weather

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-advisor/internal/models"
	"weather-advisor/internal/repositories"
	"weather-advisor/pkg/logger"
)

const defaultFetchTimeout = 10 * time.Second

// ErrCityNotFound is the only failure callers see: every provider problem is
// reported as an absent city.
var ErrCityNotFound = errors.New("city not found")

// WeatherService represents the weather service.
type WeatherService struct {
	repo    repositories.WeatherRepository
	timeout time.Duration
	l       *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, timeout time.Duration, l *logger.Logger) *WeatherService {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &WeatherService{
		repo:    repo,
		timeout: timeout,
		l:       l,
	}
}

// FetchReport loads current conditions and the daily forecast for city as one step.
// Both provider calls share the deadline; if either fails the whole step fails.
func (s *WeatherService) FetchReport(ctx context.Context, city string) (models.WeatherReport, error) {
	s.l.Info("starting weather fetch", map[string]any{
		"city":    city,
		"repo":    s.repo.Name(),
		"timeout": s.timeout.String(),
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := models.WeatherReport{City: city}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		current, err := s.repo.FetchCurrent(gctx, city)
		if err != nil {
			return errors.Wrap(err, "fetch current weather")
		}
		report.Current = current
		return nil
	})

	g.Go(func() error {
		forecast, err := s.repo.FetchForecast(gctx, city)
		if err != nil {
			return errors.Wrap(err, "fetch forecast")
		}
		if len(forecast) == 0 {
			return repositories.ErrNoForecastData
		}
		report.Forecast = forecast
		return nil
	})

	if err := g.Wait(); err != nil {
		fields := map[string]any{
			"city": city,
			"repo": s.repo.Name(),
		}
		// An unknown city is routine; anything else means the provider is unhealthy.
		if errors.Is(err, repositories.ErrCityNotFound) {
			fields["err"] = err.Error()
			s.l.Warning("weather fetch failed", fields)
		} else {
			s.l.Error(err, fields)
		}
		return models.WeatherReport{}, errors.Wrap(ErrCityNotFound, err.Error())
	}

	s.l.Info("completed weather fetch", map[string]any{
		"city":         city,
		"forecastDays": len(report.Forecast),
	})

	return report, nil
}
