package weather_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-advisor/internal/models"
	"weather-advisor/internal/repositories"
	"weather-advisor/internal/services/advice"
	"weather-advisor/internal/services/daily"
	"weather-advisor/internal/services/weather"
	"weather-advisor/pkg/logger"
)

// MockRepository implements ForecastRepository for testing
type MockRepository struct {
	name        string
	err         error
	shouldDelay bool
	feed        models.Feed

	mu        sync.Mutex
	callCount int
	cities    []string
}

func (m *MockRepository) Name() string {
	return m.name
}

func (m *MockRepository) FetchObservations(ctx context.Context, city string) (models.Feed, error) {
	m.mu.Lock()
	m.callCount++
	m.cities = append(m.cities, city)
	m.mu.Unlock()

	if m.shouldDelay {
		select {
		case <-ctx.Done():
			return models.Feed{}, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}

	if m.err != nil {
		return models.Feed{}, m.err
	}

	return m.feed, nil
}

func (m *MockRepository) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

type MockLocator struct {
	city string
	err  error
}

func (m *MockLocator) CurrentCity(ctx context.Context) (string, error) {
	return m.city, m.err
}

func newTestLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", "test", "error", io.Discard)
}

// testFeed has one observation per local hour on 2025-07-25 at UTC+2.
func testFeed(provider string, temps map[int]float64, hours ...int) models.Feed {
	offset := models.UTCOffset(7200)
	feed := models.Feed{Provider: provider, City: "Testville", Offset: offset}
	for _, h := range hours {
		ts := time.Date(2025, time.July, 25, h, 0, 0, 0, offset.Location()).Unix()
		feed.Observations = append(feed.Observations, models.Observation{
			Timestamp:   ts,
			Temperature: temps[h],
			Description: "clear sky",
			IconCode:    "01d",
		})
	}
	return feed
}

var testvilleTemps = map[int]float64{8: 10, 14: 20, 18: 15, 22: 5}

func TestNewWeatherService(t *testing.T) {
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "test-repo-1"},
	}, nil, newTestLogger())

	assert.NotNil(t, service)
}

func TestWeatherService_DailySummary(t *testing.T) {
	repo := &MockRepository{name: "repo-1", feed: testFeed("repo-1", testvilleTemps, 8, 14, 18, 22)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo}, nil, newTestLogger())

	summary, err := service.DailySummary(context.Background(), "  Testville ")

	require.NoError(t, err)
	assert.Equal(t, "repo-1", summary.Provider)
	assert.Equal(t, "Testville", summary.Forecast.City)
	assert.Equal(t, "2025-07-25", summary.Forecast.DateString())
	require.Len(t, summary.Forecast.Slots, 4)
	assert.Equal(t, models.Morning, summary.Forecast.Slots[0].Label)
	assert.Equal(t, 10.0, summary.Forecast.Slots[0].Temperature)
	assert.Equal(t, models.Overnight, summary.Forecast.Slots[3].Label)
	assert.Equal(t, 5.0, summary.Forecast.Slots[3].Temperature)
	assert.Equal(t, "Large temperature swing; consider dressing in layers.", summary.Advice)
	assert.Equal(t, []string{"Testville"}, repo.cities)
}

func TestWeatherService_FallsBackToNextProvider(t *testing.T) {
	failing := &MockRepository{name: "failing", err: errors.New("mock repository error")}
	working := &MockRepository{name: "working", feed: testFeed("working", testvilleTemps, 8, 14)}
	unused := &MockRepository{name: "unused"}

	service := weather.NewWeatherService([]repositories.ForecastRepository{failing, working, unused}, nil, newTestLogger())

	summary, err := service.DailySummary(context.Background(), "Testville")

	require.NoError(t, err)
	assert.Equal(t, "working", summary.Provider)
	assert.Equal(t, 1, failing.calls())
	assert.Equal(t, 1, working.calls())
	assert.Equal(t, 0, unused.calls())
}

func TestWeatherService_AllProvidersFail(t *testing.T) {
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "failure-repo-1", err: errors.New("boom 1")},
		&MockRepository{name: "failure-repo-2", err: errors.New("boom 2")},
	}, nil, newTestLogger())

	_, err := service.DailySummary(context.Background(), "Testville")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failure-repo-1")
	assert.Contains(t, err.Error(), "boom 2")
	assert.False(t, weather.IsNotFound(err))
}

func TestWeatherService_LocationNotFound(t *testing.T) {
	notFound := errors.Join(repositories.ErrLocationNotFound)
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "a", err: notFound},
		&MockRepository{name: "b", err: repositories.ErrLocationNotFound},
	}, nil, newTestLogger())

	_, err := service.DailySummary(context.Background(), "Atlantis")

	assert.True(t, weather.IsNotFound(err))
	assert.ErrorIs(t, err, repositories.ErrLocationNotFound)
}

func TestWeatherService_NoProviders(t *testing.T) {
	service := weather.NewWeatherService(nil, nil, newTestLogger())

	_, err := service.DailySummary(context.Background(), "Testville")

	assert.ErrorIs(t, err, weather.ErrNoProviders)
}

func TestWeatherService_NoDataIsTerminal(t *testing.T) {
	repo := &MockRepository{name: "empty", feed: models.Feed{Provider: "empty"}}
	backup := &MockRepository{name: "backup", feed: testFeed("backup", testvilleTemps, 8)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo, backup}, nil, newTestLogger())

	_, err := service.DailySummary(context.Background(), "Testville")

	assert.ErrorIs(t, err, daily.ErrNoData)
	assert.Equal(t, 1, repo.calls())
	assert.Equal(t, 0, backup.calls())
}

func TestWeatherService_ResolvesCurrentCity(t *testing.T) {
	repo := &MockRepository{name: "repo", feed: testFeed("repo", testvilleTemps, 14)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo}, &MockLocator{city: "Located"}, newTestLogger())

	summary, err := service.DailySummary(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, "Located", summary.Forecast.City)
	assert.Equal(t, []string{"Located"}, repo.cities)
}

func TestWeatherService_CityRequired(t *testing.T) {
	service := weather.NewWeatherService([]repositories.ForecastRepository{&MockRepository{name: "repo"}}, nil, newTestLogger())

	_, err := service.DailySummary(context.Background(), "")

	assert.ErrorIs(t, err, weather.ErrCityRequired)
}

func TestWeatherService_LocatorFailure(t *testing.T) {
	repo := &MockRepository{name: "repo"}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo}, &MockLocator{err: errors.New("offline")}, newTestLogger())

	_, err := service.DailySummary(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
	assert.Equal(t, 0, repo.calls())
}

func TestWeatherService_ContextCancellation(t *testing.T) {
	first := &MockRepository{name: "delayed-repo", shouldDelay: true}
	second := &MockRepository{name: "second", feed: testFeed("second", testvilleTemps, 8)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{first, second}, nil, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.DailySummary(ctx, "Testville")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, second.calls())
}

func TestWeatherService_Accessories(t *testing.T) {
	feed := testFeed("repo", map[int]float64{9: 6, 15: 12}, 9, 15)
	feed.Observations[1].Description = "light rain"
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "repo", feed: feed},
	}, nil, newTestLogger())

	result, err := service.Accessories(context.Background(), "Testville", "  Going to the GYM ")

	require.NoError(t, err)
	assert.Equal(t, "going to the gym", result.Purpose)
	assert.Equal(t, []string{"Umbrella", "Warm hat/gloves", "Gym bag"}, result.Accessories)
	assert.Equal(t, "repo", result.Provider)
}

func TestWeatherService_AccessoriesNoWeatherRules(t *testing.T) {
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "repo", feed: testFeed("repo", map[int]float64{9: 15, 15: 20}, 9, 15)},
	}, nil, newTestLogger())

	result, err := service.Accessories(context.Background(), "Testville", "gym")

	require.NoError(t, err)
	assert.Equal(t, []string{"Gym bag"}, result.Accessories)
}

func TestWeatherService_DailySummaries(t *testing.T) {
	repo := &MockRepository{name: "repo", feed: testFeed("repo", testvilleTemps, 8, 14, 18, 22)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo}, nil, newTestLogger())
	service.SetBatchConcurrency(2)

	results, err := service.DailySummaries(context.Background(), []string{"Alpha", " Beta ", "", "Gamma"})

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, city := range []string{"Alpha", "Beta", "Gamma"} {
		summary, ok := results[city]
		require.True(t, ok, city)
		assert.Equal(t, city, summary.Forecast.City)
		assert.Len(t, summary.Forecast.Slots, 4)
	}
	assert.Equal(t, 3, repo.calls())
}

func TestWeatherService_DailySummaries_ConcurrentExecution(t *testing.T) {
	repo := &MockRepository{name: "slow", shouldDelay: true, feed: testFeed("slow", testvilleTemps, 9)}
	service := weather.NewWeatherService([]repositories.ForecastRepository{repo}, nil, newTestLogger())
	service.SetBatchConcurrency(4)

	start := time.Now()
	results, err := service.DailySummaries(context.Background(), []string{"A", "B", "C", "D"})
	duration := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, results, 4)
	// The execution should be concurrent, so it should complete quickly
	// (much faster than if it were sequential)
	assert.Less(t, duration, 350*time.Millisecond)
}

func TestWeatherService_DailySummaries_FailureFailsBatch(t *testing.T) {
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "repo", err: repositories.ErrLocationNotFound},
	}, nil, newTestLogger())

	results, err := service.DailySummaries(context.Background(), []string{"Atlantis"})

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, strings.Contains(err.Error(), "Atlantis"))
	assert.True(t, weather.IsNotFound(err))
}

func TestWeatherService_AdviceMatchesEngine(t *testing.T) {
	feed := testFeed("repo", map[int]float64{12: 31}, 12)
	service := weather.NewWeatherService([]repositories.ForecastRepository{
		&MockRepository{name: "repo", feed: feed},
	}, nil, newTestLogger())

	summary, err := service.DailySummary(context.Background(), "Testville")

	require.NoError(t, err)
	assert.Equal(t, advice.MakeAdvice(summary.Forecast), summary.Advice)
	assert.Equal(t, "It may feel hot, stay hydrated.", summary.Advice)
}
