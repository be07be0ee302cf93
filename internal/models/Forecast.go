package models

import (
	"time"
)

type SlotLabel string

const (
	Morning   SlotLabel = "Morning"
	Afternoon SlotLabel = "Afternoon"
	Evening   SlotLabel = "Evening"
	Overnight SlotLabel = "Overnight"
)

// ForecastSlot is a labeled snapshot taken from exactly one Observation.
type ForecastSlot struct {
	Label             SlotLabel `json:"label" example:"Morning"`
	Temperature       float64   `json:"temperature" example:"10.0"`
	Description       string    `json:"description" example:"scattered clouds"`
	IconCode          string    `json:"icon_code" example:"03d"`
	PrecipProbability *float64  `json:"precip_probability,omitempty" example:"0.2"`
	WindSpeed         *float64  `json:"wind_speed,omitempty" example:"3.5"`
	FeelsLike         *float64  `json:"feels_like,omitempty" example:"8.4"`
}

// DailyForecast holds up to four slots for one city and one local date,
// ordered Morning, Afternoon, Evening, Overnight.
type DailyForecast struct {
	City  string         `json:"city" example:"London"`
	Date  time.Time      `json:"date"`
	Slots []ForecastSlot `json:"slots"`
}

// TemperatureRange returns the extremes over the present slots. ok is false when there are none.
func (f DailyForecast) TemperatureRange() (lo, hi float64, ok bool) {
	for i, s := range f.Slots {
		if i == 0 {
			lo, hi = s.Temperature, s.Temperature
			continue
		}
		lo = min(lo, s.Temperature)
		hi = max(hi, s.Temperature)
	}
	return lo, hi, len(f.Slots) > 0
}

// DateString formats the local date as YYYY-MM-DD.
func (f DailyForecast) DateString() string {
	return f.Date.Format(time.DateOnly)
}
