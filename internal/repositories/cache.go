package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-advisor/internal/models"
	"weather-advisor/pkg/logger"
)

// CachedRepository keeps recent feeds per city for a fixed TTL.
// Failed fetches are not cached.
type CachedRepository struct {
	repo  ForecastRepository
	cache *expirable.LRU[string, models.Feed]
	l     *logger.Logger

	mu     sync.Mutex
	hits   int
	misses int
}

func NewCachedRepository(repo ForecastRepository, size int, ttl time.Duration, l *logger.Logger) *CachedRepository {
	return &CachedRepository{
		repo:  repo,
		cache: expirable.NewLRU[string, models.Feed](size, nil, ttl),
		l:     l,
	}
}

func (c *CachedRepository) Name() string {
	return c.repo.Name()
}

func (c *CachedRepository) FetchObservations(ctx context.Context, city string) (models.Feed, error) {
	key := cacheKey(city)

	if feed, ok := c.cache.Get(key); ok {
		c.count(true)
		c.l.Debug("feed cache hit", map[string]any{"provider": c.Name(), "city": city})
		return feed, nil
	}

	c.count(false)
	c.l.Debug("feed cache miss", map[string]any{"provider": c.Name(), "city": city})

	feed, err := c.repo.FetchObservations(ctx, city)
	if err != nil {
		return models.Feed{}, err
	}

	c.cache.Add(key, feed)

	return feed, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedRepository) CacheStats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// LogCacheStats logs the counters of every cached repository in repos.
func LogCacheStats(repos []ForecastRepository, l *logger.Logger) {
	for _, repo := range repos {
		cached, ok := repo.(*CachedRepository)
		if !ok {
			continue
		}
		hits, misses := cached.CacheStats()
		l.Info("feed cache stats", map[string]any{
			"provider": cached.Name(),
			"hits":     hits,
			"misses":   misses,
			"entries":  cached.cache.Len(),
		})
	}
}

func (c *CachedRepository) count(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func cacheKey(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

var _ ForecastRepository = (*CachedRepository)(nil)
