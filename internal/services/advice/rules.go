package advice

import (
	"strings"

	"weather-advisor/internal/models"
)

const (
	rainProbability = 0.5
	windySpeed      = 10.0 // m/s, about 36 km/h
	hotTemperature  = 28.0
	swingSpread     = 8.0
)

// Predicate is a pure check over a day's forecast.
type Predicate func(models.DailyForecast) bool

// Rule pairs a predicate with the text it contributes when it holds.
type Rule struct {
	Name    string
	Applies Predicate
	Text    string
}

// WillRain holds when any slot has a precipitation probability of at least 50%
// or a description mentioning rain or drizzle.
func WillRain(f models.DailyForecast) bool {
	for _, s := range f.Slots {
		if s.PrecipProbability != nil && *s.PrecipProbability >= rainProbability {
			return true
		}
		desc := strings.ToLower(s.Description)
		if strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle") {
			return true
		}
	}
	return false
}

// IsWindy holds when any slot reports wind of at least 10 m/s.
func IsWindy(f models.DailyForecast) bool {
	for _, s := range f.Slots {
		if s.WindSpeed != nil && *s.WindSpeed >= windySpeed {
			return true
		}
	}
	return false
}

// ColderThan holds when the lowest slot temperature is strictly below threshold.
func ColderThan(threshold float64) Predicate {
	return func(f models.DailyForecast) bool {
		lo, _, ok := f.TemperatureRange()
		return ok && lo < threshold
	}
}

// HotterThan holds when the highest slot temperature is strictly above threshold.
func HotterThan(threshold float64) Predicate {
	return func(f models.DailyForecast) bool {
		_, hi, ok := f.TemperatureRange()
		return ok && hi > threshold
	}
}

// SwingsAtLeast holds when max - min reaches spread.
func SwingsAtLeast(spread float64) Predicate {
	return func(f models.DailyForecast) bool {
		lo, hi, ok := f.TemperatureRange()
		return ok && hi-lo >= spread
	}
}

// apply returns the texts of the matching rules in table order.
func apply(rules []Rule, f models.DailyForecast) []string {
	var out []string
	for _, r := range rules {
		if r.Applies(f) {
			out = append(out, r.Text)
		}
	}
	return out
}
