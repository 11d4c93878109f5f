package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	maxForecastDays = 7

	endpointCurrent  = "weather"
	endpointForecast = "forecast"
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	location   *time.Location
	observer   CallObserver
	l          *logger.Logger
}

type Option func(*OpenWeatherMapRepository)

// WithLocation sets the time zone used to split forecast samples into days.
func WithLocation(loc *time.Location) Option {
	return func(r *OpenWeatherMapRepository) {
		if loc != nil {
			r.location = loc
		}
	}
}

func WithObserver(o CallObserver) Option {
	return func(r *OpenWeatherMapRepository) {
		r.observer = o
	}
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient, opts ...Option) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}

	r := &OpenWeatherMapRepository{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		httpClient: httpClient,
		location:   time.Local,
		l:          l,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

// Fields are pointers so that a key missing from the payload can be told
// apart from a zero value.
type owmCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type CurrentWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []owmCondition `json:"weather"`
}

type ForecastItem struct {
	Dt   *int64 `json:"dt"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
}

type ForecastResponse struct {
	List []ForecastItem `json:"list"`
}

func (w *OpenWeatherMapRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error) {
	var response CurrentWeatherResponse
	if err := w.get(ctx, endpointCurrent, city, &response); err != nil {
		return models.WeatherReading{}, err
	}

	reading, err := response.reading()
	if err != nil {
		w.l.Warning("malformed current weather payload", map[string]any{
			"city": city,
			"err":  err.Error(),
		})
		return models.WeatherReading{}, err
	}
	return reading, nil
}

func (r CurrentWeatherResponse) reading() (models.WeatherReading, error) {
	switch {
	case r.Main == nil:
		return models.WeatherReading{}, malformed("main")
	case r.Main.Temp == nil:
		return models.WeatherReading{}, malformed("main.temp")
	case r.Main.Humidity == nil:
		return models.WeatherReading{}, malformed("main.humidity")
	case r.Main.Pressure == nil:
		return models.WeatherReading{}, malformed("main.pressure")
	case r.Wind == nil || r.Wind.Speed == nil:
		return models.WeatherReading{}, malformed("wind.speed")
	}

	condition, err := firstCondition(r.Weather)
	if err != nil {
		return models.WeatherReading{}, err
	}

	return models.WeatherReading{
		Temperature: *r.Main.Temp,
		Humidity:    *r.Main.Humidity,
		Pressure:    *r.Main.Pressure,
		WindSpeed:   *r.Wind.Speed,
		Description: *condition.Description,
		Icon:        *condition.Icon,
	}, nil
}

func (item ForecastItem) validate() error {
	switch {
	case item.Dt == nil:
		return malformed("list[].dt")
	case item.Main == nil || item.Main.Temp == nil:
		return malformed("list[].main.temp")
	}
	_, err := firstCondition(item.Weather)
	return err
}

func malformed(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedResponse, field)
}

func (w *OpenWeatherMapRepository) FetchForecast(ctx context.Context, city string) ([]models.ForecastDay, error) {
	var response ForecastResponse
	if err := w.get(ctx, endpointForecast, city, &response); err != nil {
		return nil, err
	}

	w.l.Debug("parsed forecast response", map[string]any{
		"city":  city,
		"items": len(response.List),
	})

	if len(response.List) == 0 {
		return nil, ErrNoForecastData
	}

	for _, item := range response.List {
		if err := item.validate(); err != nil {
			w.l.Warning("malformed forecast payload", map[string]any{
				"city": city,
				"err":  err.Error(),
			})
			return nil, err
		}
	}

	return w.dailyForecast(response), nil
}

func (w *OpenWeatherMapRepository) get(ctx context.Context, endpoint, city string, out any) error {
	start := time.Now()
	status := "error"
	defer func() {
		if w.observer != nil {
			w.observer.ObserveProviderCall(endpoint, status, time.Since(start))
		}
	}()

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", w.APIKey)
	params.Set("units", "metric")

	reqURL := fmt.Sprintf("%s/%s?%s", w.BaseURL, endpoint, params.Encode())

	w.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"city":     city,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	switch {
	case resp.StatusCode == http.StatusNotFound:
		status = "not_found"
		return fmt.Errorf("%w: %s", ErrCityNotFound, city)
	case resp.StatusCode != http.StatusOK:
		status = "upstream_error"
		return fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		status = "parse_error"
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	status = "success"
	return nil
}

type daySamples struct {
	temps        []float64
	descriptions []string
	icons        []string
}

// dailyForecast expects samples that passed validate. It folds 3-hourly samples into one entry per calendar date, in the
// order the dates first appear, and keeps at most maxForecastDays of them.
func (w *OpenWeatherMapRepository) dailyForecast(response ForecastResponse) []models.ForecastDay {
	var days []models.ForecastDay
	var samples []daySamples

	for _, item := range response.List {
		date := calendarDate(time.Unix(*item.Dt, 0), w.location)
		condition := item.Weather[0]

		index := models.FilterByDate(days, date)
		if index == -1 {
			days = append(days, models.ForecastDay{Date: date})
			samples = append(samples, daySamples{})
			index = len(days) - 1
		}

		samples[index].temps = append(samples[index].temps, *item.Main.Temp)
		samples[index].descriptions = append(samples[index].descriptions, *condition.Description)
		samples[index].icons = append(samples[index].icons, *condition.Icon)
	}

	for i := range days {
		days[i].Temperature = mean(samples[i].temps)
		days[i].Description = mode(samples[i].descriptions)
		days[i].Icon = mode(samples[i].icons)
	}

	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}

	return days
}

func calendarDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func firstCondition(conditions []owmCondition) (owmCondition, error) {
	switch {
	case len(conditions) == 0:
		return owmCondition{}, malformed("weather[0]")
	case conditions[0].Description == nil:
		return owmCondition{}, malformed("weather[0].description")
	case conditions[0].Icon == nil:
		return owmCondition{}, malformed("weather[0].icon")
	}
	return conditions[0], nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// mode returns the most frequent value; on a tie the one seen first wins.
func mode(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best string
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}
