package daily

import (
	"weather-advisor/internal/models"
)

// Target binds a slot label to the local hour it represents.
type Target struct {
	Hour  int
	Label models.SlotLabel
}

// Targets is the fixed slot layout consumed by the presentation layer and the rule engines.
var Targets = [...]Target{
	{Hour: 9, Label: models.Morning},
	{Hour: 15, Label: models.Afternoon},
	{Hour: 19, Label: models.Evening},
	{Hour: 23, Label: models.Overnight},
}

// Build produces the daily summary for a city. It fails only with ErrNoData; a date with
// fewer matching hours yields fewer slots.
func Build(city string, observations []models.Observation, offset models.UTCOffset) (models.DailyForecast, error) {
	date, day, err := SelectDate(observations, offset)
	if err != nil {
		return models.DailyForecast{}, err
	}

	slots := make([]models.ForecastSlot, 0, len(Targets))
	for _, t := range Targets {
		if slot, ok := Pick(day, t.Hour, t.Label); ok {
			slots = append(slots, slot)
		}
	}

	return models.DailyForecast{
		City:  city,
		Date:  date,
		Slots: slots,
	}, nil
}
