package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

const (
	statsGenKey     = "tpe:stats:gen"
	statsKeyPrefix  = "tpe:stats:"
	defaultStatsTTL = 30 * time.Second
)

// StatsCache keeps the last computed dashboard summary in Redis under
// tpe:stats:<gen>. Writes to the inventory INCR the generation, so a summary
// computed across a write lands on a key readers have already moved past.
// The TTL cleans up old generations.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

func statsKey(gen int64) string {
	return statsKeyPrefix + strconv.FormatInt(gen, 10)
}

// Get returns the current generation and its summary. A missing summary is a
// miss, not an error.
func (c *StatsCache) Get(ctx context.Context) (*domain.TerminalStats, int64, error) {
	gen, err := c.client.Get(ctx, statsGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen = 0
	} else if err != nil {
		return nil, 0, fmt.Errorf("stats cache generation: %w", err)
	}

	raw, err := c.client.Get(ctx, statsKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.TerminalStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, 0, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, gen, nil
}

func (c *StatsCache) Set(ctx context.Context, gen int64, stats *domain.TerminalStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey(gen), raw, c.ttl).Err()
}

// Invalidate advances the generation.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, statsGenKey).Err()
}
