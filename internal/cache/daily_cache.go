package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTTL bounds how long a cached daily snapshot stays valid without
// an explicit invalidation.
const DefaultTTL = 10 * time.Minute

// MetricsRecorder records cache hit/miss outcomes.
type MetricsRecorder interface {
	RecordCacheResult(hit bool)
}

// DailyCache caches serialized daily progress snapshots keyed by project and
// work date. A nil Redis client disables caching entirely, every Get misses
// and every Set is a no-op, so callers never need to branch on availability.
type DailyCache struct {
	redis   *redis.Client
	logger  *zap.Logger
	metrics MetricsRecorder
	ttl     time.Duration
}

// NewDailyCache creates a new DailyCache. redis may be nil.
func NewDailyCache(redis *redis.Client, logger *zap.Logger, metrics MetricsRecorder) *DailyCache {
	return &DailyCache{
		redis:   redis,
		logger:  logger,
		metrics: metrics,
		ttl:     DefaultTTL,
	}
}

func dailyKey(projectID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("daily:%s:%s", projectID.String(), date.UTC().Format("2006-01-02"))
}

// Get loads a cached snapshot into dest. It returns false on a miss or any
// Redis error; errors are logged and never propagated to the request path.
func (c *DailyCache) Get(ctx context.Context, projectID uuid.UUID, date time.Time, dest interface{}) bool {
	if c.redis == nil {
		return false
	}

	data, err := c.redis.Get(ctx, dailyKey(projectID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("daily cache read failed", zap.Error(err))
		}
		c.record(false)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("daily cache entry corrupt", zap.Error(err))
		c.record(false)
		return false
	}

	c.record(true)
	return true
}

// Set stores a snapshot with the cache TTL.
func (c *DailyCache) Set(ctx context.Context, projectID uuid.UUID, date time.Time, value interface{}) {
	if c.redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("daily cache marshal failed", zap.Error(err))
		return
	}

	if err := c.redis.Set(ctx, dailyKey(projectID, date), data, c.ttl).Err(); err != nil {
		c.logger.Warn("daily cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot for one project/date. Mutating writes call
// this so the next read recomputes from the database.
func (c *DailyCache) Invalidate(ctx context.Context, projectID uuid.UUID, date time.Time) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Del(ctx, dailyKey(projectID, date)).Err(); err != nil {
		c.logger.Warn("daily cache invalidation failed", zap.Error(err))
	}
}

// InvalidateProject drops every cached snapshot for a project.
func (c *DailyCache) InvalidateProject(ctx context.Context, projectID uuid.UUID) {
	if c.redis == nil {
		return
	}

	pattern := fmt.Sprintf("daily:%s:*", projectID.String())
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("daily cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("daily cache invalidation failed", zap.Error(err))
	}
}

func (c *DailyCache) record(hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCacheResult(hit)
	}
}
