package http

import (
	"fmt"
	"math"
	"strconv"

	"weather-advisor/internal/models"
	"weather-advisor/internal/services/weather"
)

// SlotResponse is one slot of the daily summary with its display strings.
type SlotResponse struct {
	Label             string   `json:"label" example:"Morning"`
	Temperature       float64  `json:"temperature" example:"10.2"`
	TemperatureText   string   `json:"temperature_text" example:"10.2℃"`
	Description       string   `json:"description" example:"light rain"`
	DescriptionText   string   `json:"description_text" example:"light rain (feels like 8.9℃)"`
	IconCode          string   `json:"icon_code" example:"10d"`
	PrecipProbability *float64 `json:"precip_probability" example:"0.6"`
	PrecipText        string   `json:"precip_text" example:"60%"`
	WindSpeed         *float64 `json:"wind_speed" example:"3.4"`
	WindText          string   `json:"wind_text" example:"3.4 m/s"`
	FeelsLike         *float64 `json:"feels_like" example:"8.9"`
}

// DailySummaryResponse represents the daily summary response
type DailySummaryResponse struct {
	City     string         `json:"city" example:"Berlin"`
	Date     string         `json:"date" example:"2025-07-25"`
	Provider string         `json:"provider" example:"openweathermap"`
	Slots    []SlotResponse `json:"slots"`
	Advice   string         `json:"advice" example:"It may rain today, bring an umbrella."`
}

// AccessoriesResponse represents the accessories response
type AccessoriesResponse struct {
	City        string   `json:"city" example:"Berlin"`
	Date        string   `json:"date" example:"2025-07-25"`
	Provider    string   `json:"provider" example:"openweathermap"`
	Purpose     string   `json:"purpose" example:"gym"`
	Accessories []string `json:"accessories" example:"Umbrella,Gym bag"`
}

// BatchResponse maps each requested city to its summary
type BatchResponse struct {
	Summaries map[string]DailySummaryResponse `json:"summaries"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"city is required"`
}

func presentSlot(s models.ForecastSlot) SlotResponse {
	out := SlotResponse{
		Label:             string(s.Label),
		Temperature:       s.Temperature,
		TemperatureText:   fmt.Sprintf("%.1f℃", roundHalfUp(s.Temperature, 1)),
		Description:       s.Description,
		DescriptionText:   s.Description,
		IconCode:          s.IconCode,
		PrecipProbability: s.PrecipProbability,
		WindSpeed:         s.WindSpeed,
		FeelsLike:         s.FeelsLike,
	}

	if s.FeelsLike != nil {
		out.DescriptionText = fmt.Sprintf("%s (feels like %.1f℃)", s.Description, roundHalfUp(*s.FeelsLike, 1))
	}
	if s.PrecipProbability != nil {
		out.PrecipText = fmt.Sprintf("%.0f%%", roundHalfUp(*s.PrecipProbability*100, 0))
	}
	if s.WindSpeed != nil {
		out.WindText = fmt.Sprintf("%.1f m/s", roundHalfUp(*s.WindSpeed, 1))
	}

	return out
}

// roundHalfUp rounds the shortest decimal form of v, with halves away from zero,
// so that 2.25 and 2.35 both round up before %.1f sees them.
func roundHalfUp(v float64, places int) float64 {
	shifted, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', -1, 64)+"e"+strconv.Itoa(places), 64)
	if err != nil {
		return v
	}
	return math.Round(shifted) / math.Pow10(places)
}

func presentSummary(s weather.Summary) DailySummaryResponse {
	slots := make([]SlotResponse, len(s.Forecast.Slots))
	for i, slot := range s.Forecast.Slots {
		slots[i] = presentSlot(slot)
	}

	return DailySummaryResponse{
		City:     s.Forecast.City,
		Date:     s.Forecast.DateString(),
		Provider: s.Provider,
		Slots:    slots,
		Advice:   s.Advice,
	}
}

func presentAccessories(a weather.AccessorySummary) AccessoriesResponse {
	return AccessoriesResponse{
		City:        a.Forecast.City,
		Date:        a.Forecast.DateString(),
		Provider:    a.Provider,
		Purpose:     a.Purpose,
		Accessories: a.Accessories,
	}
}
