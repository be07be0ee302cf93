package models

import (
	"fmt"
	"time"
)

// Observation is one raw 3-hour data point of a provider feed.
type Observation struct {
	Timestamp         int64    `json:"timestamp" example:"1753455600"`
	Temperature       float64  `json:"temperature" example:"21.7"`
	FeelsLike         *float64 `json:"feels_like,omitempty" example:"21.2"`
	Description       string   `json:"description" example:"light rain"`
	IconCode          string   `json:"icon_code" example:"10d"`
	PrecipProbability *float64 `json:"precip_probability,omitempty" example:"0.6"`
	WindSpeed         *float64 `json:"wind_speed,omitempty" example:"4.1"`
}

// UTCOffset is a fixed offset from UTC in seconds. It carries no DST rules.
type UTCOffset int

func (o UTCOffset) Location() *time.Location {
	sign := "+"
	secs := int(o)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", sign, secs/3600, secs%3600/60), int(o))
}

// Local returns the wall clock time of a unix timestamp at this offset.
func (o UTCOffset) Local(ts int64) time.Time {
	return time.Unix(ts, 0).In(o.Location())
}

// Feed is what a forecast-data source returns for one city.
type Feed struct {
	Provider     string        `json:"provider" example:"openweathermap"`
	City         string        `json:"city" example:"London"`
	Offset       UTCOffset     `json:"utc_offset" example:"3600"`
	Observations []Observation `json:"observations"`
}

func (f *Feed) RequestParams() string {
	return fmt.Sprintf("provider: %s city: %s offset: %d entries: %d", f.Provider, f.City, f.Offset, len(f.Observations))
}

// Float returns a pointer to v, for optional observation metrics.
func Float(v float64) *float64 {
	return &v
}
