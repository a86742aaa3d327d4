package registry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ChainCacheKeyPrefix = "approval-chain:"

func ChainCacheKey(departmentCode string) string {
	return ChainCacheKeyPrefix + normalizeCode(departmentCode)
}

// Cached keeps chain templates in Redis. Role lookups are not cached so a
// revoked role stops authorizing immediately.
type Cached struct {
	source Source
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
	onHit  func(hit bool)
}

func NewCached(source Source, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *Cached {
	l := zap.L().Named("registry.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registry.cache")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Cached{source: source, rdb: rdb, ttl: ttl, sf: &singleflight.Group{}, logger: l}
}

// OnLookup registers a callback told whether each ChainFor hit the cache.
func (c *Cached) OnLookup(fn func(hit bool)) *Cached {
	c.onHit = fn
	return c
}

func (c *Cached) observe(hit bool) {
	if c.onHit != nil {
		c.onHit(hit)
	}
}

func (c *Cached) ChainFor(ctx context.Context, departmentCode string) (RoleList, error) {
	key := ChainCacheKey(departmentCode)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var chain RoleList
		if json.Unmarshal([]byte(cached), &chain) == nil {
			c.observe(true)
			return chain, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("chain cache read failed", zap.String("key", key), zap.Error(err))
	}

	c.observe(false)

	v, err, _ := c.sf.Do(key, func() (any, error) {
		chain, err := c.source.ChainFor(ctx, departmentCode)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(chain); err == nil {
			if err := c.rdb.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
				c.logger.Warn("chain cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return chain, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(RoleList).Clone(), nil
}

func (c *Cached) RolesOf(ctx context.Context, userID string) (RoleSet, error) {
	return c.source.RolesOf(ctx, userID)
}

func (c *Cached) Lookup(ctx context.Context, userID string) (User, error) {
	return c.source.Lookup(ctx, userID)
}

// Invalidate drops a cached template after it was edited.
func (c *Cached) Invalidate(ctx context.Context, departmentCode string) error {
	return c.rdb.Del(ctx, ChainCacheKey(departmentCode)).Err()
}
