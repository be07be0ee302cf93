package weather

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-advisor/internal/models"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/advice"
	"weather-advisor/internal/services/daily"
	"weather-advisor/pkg/logger"
)

const defaultBatchConcurrency = 4

var (
	ErrCityRequired = errors.New("city is required")
	ErrNoProviders  = errors.New("no forecast providers configured")
)

// Summary is the daily forecast of one city together with its advisory text.
type Summary struct {
	Provider string
	Forecast models.DailyForecast
	Advice   string
}

// AccessorySummary is the accessory recommendation for one city and purpose.
type AccessorySummary struct {
	Provider    string
	Forecast    models.DailyForecast
	Purpose     string
	Accessories []string
}

// WeatherService represents the weather service.
type WeatherService struct {
	repos            []repositories.ForecastRepository
	locator          repositories.LocationRepository
	batchConcurrency int
	l                *logger.Logger
}

// NewWeatherService tries repos in order for every request. locator may be nil, in which
// case requests without a city fail with ErrCityRequired.
func NewWeatherService(repos []repositories.ForecastRepository, locator repositories.LocationRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repos:            repos,
		locator:          locator,
		batchConcurrency: defaultBatchConcurrency,
		l:                l,
	}
}

// SetBatchConcurrency bounds the number of cities fetched at once by DailySummaries.
func (s *WeatherService) SetBatchConcurrency(n int) {
	if n > 0 {
		s.batchConcurrency = n
	}
}

// DailySummary builds the four-slot summary of the earliest day in the city's feed.
func (s *WeatherService) DailySummary(ctx context.Context, city string) (Summary, error) {
	feed, forecast, err := s.forecast(ctx, city)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Provider: feed.Provider,
		Forecast: forecast,
		Advice:   advice.MakeAdvice(forecast),
	}, nil
}

// Accessories recommends accessories for the city's day and the stated purpose.
func (s *WeatherService) Accessories(ctx context.Context, city, purpose string) (AccessorySummary, error) {
	feed, forecast, err := s.forecast(ctx, city)
	if err != nil {
		return AccessorySummary{}, err
	}

	purpose = strings.ToLower(strings.TrimSpace(purpose))
	accessories := advice.RecommendAccessories(forecast, purpose)

	s.l.Debug("recommended accessories", map[string]any{
		"city":        forecast.City,
		"purpose":     purpose,
		"accessories": accessories,
	})

	return AccessorySummary{
		Provider:    feed.Provider,
		Forecast:    forecast,
		Purpose:     purpose,
		Accessories: accessories,
	}, nil
}

// DailySummaries fetches every city concurrently. The first failure cancels the rest.
func (s *WeatherService) DailySummaries(ctx context.Context, cities []string) (map[string]Summary, error) {
	s.l.Info("starting batch summary", map[string]any{
		"cities":      len(cities),
		"concurrency": s.batchConcurrency,
	})

	results := make(map[string]Summary, len(cities))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for _, city := range cities {
		city := strings.TrimSpace(city)
		if city == "" {
			continue
		}

		g.Go(func() error {
			summary, err := s.DailySummary(gctx, city)
			if err != nil {
				return errors.Wrapf(err, "city %s", city)
			}

			mu.Lock()
			results[city] = summary
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.l.Info("completed batch summary", map[string]any{"cities": len(results)})

	return results, nil
}

func (s *WeatherService) forecast(ctx context.Context, city string) (models.Feed, models.DailyForecast, error) {
	city, err := s.resolveCity(ctx, city)
	if err != nil {
		return models.Feed{}, models.DailyForecast{}, err
	}

	feed, err := s.fetchFeed(ctx, city)
	if err != nil {
		return models.Feed{}, models.DailyForecast{}, err
	}

	forecast, err := daily.Build(city, feed.Observations, feed.Offset)
	if err != nil {
		s.l.Warning("no forecast for the target date", map[string]any{
			"city":     city,
			"provider": feed.Provider,
			"entries":  len(feed.Observations),
		})
		return models.Feed{}, models.DailyForecast{}, err
	}

	s.l.Info("built daily forecast", map[string]any{
		"city":     city,
		"provider": feed.Provider,
		"date":     forecast.DateString(),
		"slots":    len(forecast.Slots),
	})

	return feed, forecast, nil
}

func (s *WeatherService) resolveCity(ctx context.Context, city string) (string, error) {
	city = strings.TrimSpace(city)
	if city != "" {
		return city, nil
	}
	if s.locator == nil {
		return "", ErrCityRequired
	}

	city, err := s.locator.CurrentCity(ctx)
	if err != nil {
		return "", errors.Wrap(err, "resolve current city")
	}
	return city, nil
}

// fetchFeed returns the first successful feed. Provider failures are logged and
// combined when every provider fails.
func (s *WeatherService) fetchFeed(ctx context.Context, city string) (models.Feed, error) {
	if len(s.repos) == 0 {
		return models.Feed{}, ErrNoProviders
	}

	var errs []error
	for _, repo := range s.repos {
		s.l.Debug("fetching forecast", map[string]any{"repo": repo.Name(), "city": city})

		feed, err := repo.FetchObservations(ctx, city)
		if err == nil {
			return feed, nil
		}

		s.l.Warning("failed to fetch forecast", map[string]any{"repo": repo.Name(), "city": city, "err": err})
		errs = append(errs, errors.Wrap(err, repo.Name()))

		if ctx.Err() != nil {
			break
		}
	}

	err := joinErrors(errs)
	if IsNotFound(err) {
		s.l.Warning("unknown location", map[string]any{"city": city})
	} else {
		s.l.Error(err, map[string]any{"city": city})
	}

	return models.Feed{}, err
}
