package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-advisor/docs" // registers the swagger spec served under /swagger
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/logger"
)

type routes struct {
	service *weather.WeatherService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	forecast := app.Group("/forecast")
	forecast.Get("/daily", r.handleDailySummary)
	forecast.Get("/daily/batch", r.handleDailyBatch)
	forecast.Get("/accessories", r.handleAccessories)
}
