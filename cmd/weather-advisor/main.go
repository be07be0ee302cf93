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

	"github.com/joho/godotenv"

	"weather-advisor/config"
	v1 "weather-advisor/internal/controllers/http/v1"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/httpserver"
	"weather-advisor/pkg/logger"
	"weather-advisor/pkg/observe"
)

// @title Weather Advisor API
// @version 1.0.0
// @description Daily weather summaries with four time-of-day slots, advice and accessory recommendations.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Daily summary, advice and accessory operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	envErr := godotenv.Load()

	cnf, err := config.NewConfig(config.DefaultPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.ReportsErrors(), 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sentry disabled:", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l := logger.NewZapLogger(cnf.App.Name, cnf.App.Env, cnf.Log.Level, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}
	if envErr != nil {
		l.Debug("no .env file loaded", map[string]any{"err": envErr})
	}

	app := httpserver.InitFiberServer(cnf)

	repos := repositories.InitForecastRepositories(cnf, l)
	if len(repos) == 0 {
		l.Warning("no forecast providers configured")
	}

	locator := repositories.NewIPLocationRepository(cnf.Weather.LocationURL, l, &http.Client{Timeout: 5 * time.Second})

	service := weather.NewWeatherService(repos, locator, l)
	service.SetBatchConcurrency(cnf.Weather.BatchConcurrency)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"env":       cnf.App.Env,
		"providers": len(repos),
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
		repositories.LogCacheStats(repos, l)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case sig := <-sigCh:
		l.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
