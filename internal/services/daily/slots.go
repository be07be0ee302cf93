package daily

import (
	"weather-advisor/internal/models"
)

// Pick returns the slot built from the observation whose local hour is closest to
// targetHour. Equidistant candidates resolve to the one that appears first in day.
func Pick(day []LocalObservation, targetHour int, label models.SlotLabel) (models.ForecastSlot, bool) {
	best := -1
	bestDistance := 0
	for i, o := range day {
		d := abs(o.LocalHour - targetHour)
		if best == -1 || d < bestDistance {
			best, bestDistance = i, d
		}
	}

	if best == -1 {
		return models.ForecastSlot{}, false
	}

	o := day[best]
	return models.ForecastSlot{
		Label:             label,
		Temperature:       o.Temperature,
		Description:       o.Description,
		IconCode:          o.IconCode,
		PrecipProbability: copyFloat(o.PrecipProbability),
		WindSpeed:         copyFloat(o.WindSpeed),
		FeelsLike:         copyFloat(o.FeelsLike),
	}, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Float(*v)
}
