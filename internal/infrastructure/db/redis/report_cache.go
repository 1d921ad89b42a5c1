package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahmadjutt29/isp-billing-system/internal/api/metrics"
)

const (
	reportTTL       = time.Minute
	reportKeyPrefix = "report:"
)

// ReportCache stores serialized income reports in Redis for a short TTL.
// Entries are dropped on any fee mutation; a stale entry never outlives TTL.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get loads a cached report into v, reporting whether the key was present.
func (c *ReportCache) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("report cache get: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("report cache decode: %w", err)
	}
	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores v under the given report key, expiring after reportTTL.
func (c *ReportCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	if err := c.client.Set(ctx, reportKeyPrefix+key, raw, reportTTL).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}

// Invalidate deletes every cached report entry.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("report cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("report cache delete: %w", err)
	}
	return nil
}
