package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/classtrack/academic-records-api/internal/core/ports"
)

const (
	statsKey = "stats:format_percentages"
	statsTTL = 30 * time.Second
)

// StatsCache caches the file-type percentage aggregate for a short window.
// Misses and Redis failures both fall through to the database.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache wraps the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// GetFormatPercentages returns the cached aggregate and whether it was found.
func (c *StatsCache) GetFormatPercentages(ctx context.Context) ([]ports.FormatPercentage, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var stats []ports.FormatPercentage
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return stats, true
}

// SetFormatPercentages stores the aggregate until the TTL elapses.
func (c *StatsCache) SetFormatPercentages(ctx context.Context, stats []ports.FormatPercentage) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
