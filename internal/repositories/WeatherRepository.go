package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"weather-advisor/config"
	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

// ErrLocationNotFound is returned when a provider does not know the requested city.
var ErrLocationNotFound = errors.New("location not found")

// ForecastRepository is a forecast-data source yielding 3-hour observations for a city.
type ForecastRepository interface {
	Name() string
	FetchObservations(ctx context.Context, city string) (models.Feed, error)
}

// LocationRepository resolves the caller's city when a request does not name one.
type LocationRepository interface {
	CurrentCity(ctx context.Context) (string, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 10 * time.Second

// InitForecastRepositories builds the configured providers in order, each rate limited
// and cached as configured. Unknown names are skipped with a warning.
func InitForecastRepositories(cfg *config.Config, l *logger.Logger) []ForecastRepository {
	var repos []ForecastRepository
	for _, api := range cfg.Weather.APIs {
		client := &http.Client{Timeout: timeout(api.Timeout)}

		var repo ForecastRepository
		switch api.Name {
		case "openweathermap":
			owm, err := NewOpenWeatherMapRepository(api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping openweathermap provider", map[string]any{"err": err})
				continue
			}
			if api.BaseURL != "" {
				owm.BaseURL = api.BaseURL
			}
			repo = owm
		case "open-meteo":
			om := NewOpenMeteoRepository(l, client)
			if api.BaseURL != "" {
				om.BaseURL = api.BaseURL
			}
			repo = om
		default:
			l.Warning("unknown weather provider", map[string]any{"name": api.Name})
			continue
		}

		if api.RateLimit > 0 {
			repo = NewRateLimitedRepository(repo, api.RateLimit, api.Burst)
		}
		if cfg.Cache.Size > 0 && cfg.Cache.TTLSeconds > 0 {
			repo = NewCachedRepository(repo, cfg.Cache.Size, time.Duration(cfg.Cache.TTLSeconds)*time.Second, l)
		}

		repos = append(repos, repo)
	}

	return repos
}

func timeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(seconds) * time.Second
}
