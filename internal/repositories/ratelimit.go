package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-advisor/internal/models"
)

// RateLimitedRepository wraps a ForecastRepository with a token bucket.
type RateLimitedRepository struct {
	repo    ForecastRepository
	limiter *rate.Limiter
}

// NewRateLimitedRepository allows rps requests per second (fractional for less than one)
// with bursts of up to burst requests.
func NewRateLimitedRepository(repo ForecastRepository, rps float64, burst int) *RateLimitedRepository {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name is the wrapped provider's name; feeds keep reporting the real provider.
func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

// FetchObservations waits for the limiter or the context, whichever comes first.
func (r *RateLimitedRepository) FetchObservations(ctx context.Context, city string) (models.Feed, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Feed{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.FetchObservations(ctx, city)
}

var _ ForecastRepository = (*RateLimitedRepository)(nil)
