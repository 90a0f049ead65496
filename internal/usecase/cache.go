package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain/repository"
)

// Cache keys. The cache repository adds its own prefix.
const (
	KeyStatusBoard       = "status:board"
	KeyStatusIncident    = "status:incident"
	KeyRoutesList        = "routes:list"
	KeyOperatorsList     = "operators:list"
	KeyOperatorsFeatured = "operators:featured"
	KeyFaresList         = "fares:list"
)

// Key groups deleted after writes
var (
	statusKeys   = []string{KeyStatusBoard, KeyStatusIncident}
	listingKeys  = []string{KeyRoutesList, KeyOperatorsList, KeyOperatorsFeatured, KeyFaresList}
	allCacheKeys = append(append([]string{}, statusKeys...), listingKeys...)
)

// readThrough returns the cached value for key or loads and caches it.
// Cache failures are logged and never returned.
func readThrough[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	logger *zap.Logger,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	raw, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to read cache", zap.String("key", key), zap.Error(err))
	} else if raw != nil {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			logger.Debug("Cache hit", zap.String("key", key))
			return v, nil
		}
		logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to write cache", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

func invalidate(ctx context.Context, cache repository.CacheRepository, logger *zap.Logger, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
