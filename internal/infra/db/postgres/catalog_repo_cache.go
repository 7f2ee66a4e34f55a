package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"telegram-registration-bot/internal/domain/model"
	"telegram-registration-bot/internal/domain/ports/repository"
	"telegram-registration-bot/internal/infra/metrics"
	red "telegram-registration-bot/internal/infra/redis"
)

var _ repository.CatalogRepository = (*catalogRepoCacheDecorator)(nil)

// catalogRepoCacheDecorator caches the read-mostly catalogs in Redis. Every
// registration turn at the REGION and INTERESTS steps hits the catalog, so
// the keyboards stop costing a query per message. Suggestions are not cached:
// the term space is unbounded user input.
type catalogRepoCacheDecorator struct {
	inner repository.CatalogRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewCatalogRepoCacheDecorator(inner repository.CatalogRepository, cache red.RedisClient, ttl time.Duration) repository.CatalogRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &catalogRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func (d *catalogRepoCacheDecorator) ListRegions(ctx context.Context) ([]model.Region, error) {
	const key = "regions:all"
	if val, err := d.cache.Get(ctx, key); err == nil {
		var regions []model.Region
		if json.Unmarshal([]byte(val), &regions) == nil {
			metrics.IncCacheRequest("regions", "hit")
			return regions, nil
		}
	}
	metrics.IncCacheRequest("regions", "miss")
	regions, err := d.inner.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(regions); err == nil {
		_ = d.cache.Set(ctx, key, raw, d.ttl)
	}
	return regions, nil
}

func (d *catalogRepoCacheDecorator) FindRegionByName(ctx context.Context, name string) (*model.Region, error) {
	key := fmt.Sprintf("region:%s", name)
	if val, err := d.cache.Get(ctx, key); err == nil {
		var reg model.Region
		if json.Unmarshal([]byte(val), &reg) == nil {
			metrics.IncCacheRequest("region", "hit")
			return &reg, nil
		}
	}
	metrics.IncCacheRequest("region", "miss")
	reg, err := d.inner.FindRegionByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(reg); err == nil {
		_ = d.cache.Set(ctx, key, raw, d.ttl)
	}
	return reg, nil
}

func (d *catalogRepoCacheDecorator) ListInterests(ctx context.Context) ([]model.Interest, error) {
	const key = "interests:all"
	if val, err := d.cache.Get(ctx, key); err == nil {
		var interests []model.Interest
		if json.Unmarshal([]byte(val), &interests) == nil {
			metrics.IncCacheRequest("interests", "hit")
			return interests, nil
		}
	}
	metrics.IncCacheRequest("interests", "miss")
	interests, err := d.inner.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(interests); err == nil {
		_ = d.cache.Set(ctx, key, raw, d.ttl)
	}
	return interests, nil
}

func (d *catalogRepoCacheDecorator) FindInterestByName(ctx context.Context, normalized string) (*model.Interest, error) {
	key := fmt.Sprintf("interest:%s", normalized)
	if val, err := d.cache.Get(ctx, key); err == nil {
		var in model.Interest
		if json.Unmarshal([]byte(val), &in) == nil {
			metrics.IncCacheRequest("interest", "hit")
			return &in, nil
		}
	}
	metrics.IncCacheRequest("interest", "miss")
	in, err := d.inner.FindInterestByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(in); err == nil {
		_ = d.cache.Set(ctx, key, raw, d.ttl)
	}
	return in, nil
}

func (d *catalogRepoCacheDecorator) SuggestInterests(ctx context.Context, term string, limit int) ([]model.Interest, error) {
	return d.inner.SuggestInterests(ctx, term, limit)
}
