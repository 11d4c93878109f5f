package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-advisor/config"
	_ "weather-advisor/docs"
	v1 "weather-advisor/internal/controllers/http/v1"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/httpserver"
	"weather-advisor/pkg/logger"
	"weather-advisor/pkg/metrics"
	"weather-advisor/pkg/observe"
)

// @title Weather Advisor API
// @version 1.0.0
// @description Current weather and forecast for a city, with health advice and place and activity recommendations.
// @termsOfService http://swagger.io/terms/

// @contact.name Weather Advisor Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather, health and activity advice
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}

	var sentryHook *observe.SentryHook
	if cnf.ReportsErrors() {
		sentryHook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			writers = append(writers, sentryHook)
		}
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)

	m := metrics.New()

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	}, m.Middleware())
	app.Get("/metrics", m.Handler())

	repo, err := repositories.NewOpenWeatherMapRepository(
		cnf.Weather.BaseURL,
		cnf.Weather.APIKey,
		l,
		&http.Client{Timeout: cnf.WeatherTimeout()},
		repositories.WithLocation(cnf.Location()),
		repositories.WithObserver(m),
	)
	if err != nil {
		l.Fatal("cannot create weather repository", map[string]any{"err": err.Error()})
	}

	service := weather.NewWeatherService(repo, cnf.WeatherTimeout(), l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"version": cnf.App.Version,
		"env":     cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		l.Info("received shutdown signal")
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
