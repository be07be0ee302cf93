package daily

import (
	"time"

	"github.com/pkg/errors"

	"weather-advisor/internal/models"
)

// ErrNoData means there is nothing to summarize for the target date.
var ErrNoData = errors.New("no forecast entries for the target date")

// LocalObservation is an Observation tagged with its hour (0-23) at the city offset.
type LocalObservation struct {
	models.Observation
	LocalHour int
}

// SelectDate resolves the target local date and returns the observations that fall on it.
//
// The target date is the local date of the first observation in arrival order, not the
// current date in the city: feeds whose first entries lag behind or run ahead of "today"
// still produce a summary for the earliest day they describe.
func SelectDate(observations []models.Observation, offset models.UTCOffset) (time.Time, []LocalObservation, error) {
	if len(observations) == 0 {
		return time.Time{}, nil, ErrNoData
	}

	target := localDate(offset.Local(observations[0].Timestamp))

	day := make([]LocalObservation, 0, len(observations))
	for _, o := range observations {
		local := offset.Local(o.Timestamp)
		if !localDate(local).Equal(target) {
			continue
		}
		day = append(day, LocalObservation{
			Observation: o,
			LocalHour:   local.Hour(),
		})
	}

	if len(day) == 0 {
		return time.Time{}, nil, ErrNoData
	}

	return target, day, nil
}

func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
