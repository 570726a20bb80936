package store

import (
	"log/slog"
	"time"

	"github.com/meetcal/meetcal/internal/profile"
	"github.com/meetcal/meetcal/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Caches. personCache is keyed by username, slotCache by person id;
	// both are invalidated on every write through the facade. redisCache
	// is the optional shared L2 for slot lists, nil when unconfigured.
	personCache *cache.Cache
	slotCache   *cache.Cache
	redisCache  *cache.RedisCache
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        1000,
	}

	store := &Store{
		driver:      driver,
		profile:     profile,
		personCache: cache.New(cacheConfig),
		slotCache:   cache.New(cacheConfig),
	}

	if cache.IsRedisEnabled() {
		redisCache, err := cache.NewRedisCache(cache.RedisConfigFromEnv())
		if err != nil {
			// Degrade to L1 only; the store works without the shared cache.
			slog.Warn("redis cache unavailable, continuing with memory cache only", "error", err)
		} else {
			store.redisCache = redisCache
		}
	}

	return store
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.personCache.Close()
	s.slotCache.Close()
	if s.redisCache != nil {
		_ = s.redisCache.Close()
	}

	return s.driver.Close()
}
