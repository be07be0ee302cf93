package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-advisor/internal/services/daily"
	"weather-advisor/internal/services/weather"
)

// handleDailySummary godoc
// @Summary Get the daily summary
// @Description Reduces the city's forecast feed to Morning, Afternoon, Evening and Overnight slots with advice.
// @Description An empty city falls back to the caller's current location when a locator is configured.
// @Tags Forecast
// @Produce json
// @Param city query string false "City name" example(Berlin)
// @Success 200 {object} DailySummaryResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Missing city"
// @Failure 404 {object} ErrorResponse "Unknown city or no data for the day"
// @Failure 502 {object} ErrorResponse "Every provider failed"
// @Router /forecast/daily [get]
func (r *routes) handleDailySummary(c *fiber.Ctx) error {
	city := c.Query("city")

	summary, err := r.service.DailySummary(c.UserContext(), city)
	if err != nil {
		return r.fail(c, err, map[string]any{"city": city})
	}

	return c.JSON(presentSummary(summary))
}

// handleAccessories godoc
// @Summary Recommend accessories
// @Description Lists weather-driven accessories for the city's day followed by at most one purpose item.
// @Tags Forecast
// @Produce json
// @Param city query string false "City name" example(Berlin)
// @Param purpose query string false "Purpose of the outing" example(gym)
// @Success 200 {object} AccessoriesResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Missing city"
// @Failure 404 {object} ErrorResponse "Unknown city or no data for the day"
// @Failure 502 {object} ErrorResponse "Every provider failed"
// @Router /forecast/accessories [get]
func (r *routes) handleAccessories(c *fiber.Ctx) error {
	city := c.Query("city")
	purpose := c.Query("purpose")

	result, err := r.service.Accessories(c.UserContext(), city, purpose)
	if err != nil {
		return r.fail(c, err, map[string]any{"city": city, "purpose": purpose})
	}

	return c.JSON(presentAccessories(result))
}

// handleDailyBatch godoc
// @Summary Get daily summaries for several cities
// @Description Fetches every city concurrently. One failing city fails the whole request.
// @Tags Forecast
// @Produce json
// @Param cities query string true "Comma separated city names" example(Berlin,Paris)
// @Success 200 {object} BatchResponse "Successful response"
// @Failure 400 {object} ErrorResponse "No cities given"
// @Failure 404 {object} ErrorResponse "Unknown city or no data for the day"
// @Failure 502 {object} ErrorResponse "Every provider failed"
// @Router /forecast/daily/batch [get]
func (r *routes) handleDailyBatch(c *fiber.Ctx) error {
	var cities []string
	for _, city := range strings.Split(c.Query("cities"), ",") {
		if city = strings.TrimSpace(city); city != "" {
			cities = append(cities, city)
		}
	}

	if len(cities) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: cities",
		})
	}

	summaries, err := r.service.DailySummaries(c.UserContext(), cities)
	if err != nil {
		return r.fail(c, err, map[string]any{"cities": cities})
	}

	response := BatchResponse{Summaries: make(map[string]DailySummaryResponse, len(summaries))}
	for city, summary := range summaries {
		response.Summaries[city] = presentSummary(summary)
	}

	return c.JSON(response)
}

func (r *routes) fail(c *fiber.Ctx, err error, fields map[string]any) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		fields["err"] = err.Error()
		r.l.Info("request rejected", fields)
	}

	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, weather.ErrCityRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, daily.ErrNoData), weather.IsNotFound(err):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrNoProviders):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadGateway
	}
}
