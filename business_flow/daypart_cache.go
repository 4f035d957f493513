package businessflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirphl/signage-admin/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DaypartCache stores resolved daypart definition lists per store in Redis.
// A nil client disables caching; every failure is logged and treated as a miss.
type DaypartCache struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewDaypartCache(rc *redis.Client, prefix string, ttl time.Duration, logger *zerolog.Logger) *DaypartCache {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &DaypartCache{rc: rc, prefix: prefix, ttl: ttl, logger: logger}
}

// Enabled reports whether a Redis client is configured
func (c *DaypartCache) Enabled() bool {
	return c != nil && c.rc != nil
}

func (c *DaypartCache) key(storeID uint) string {
	return fmt.Sprintf("%sdayparts:store:%d", c.prefix, storeID)
}

// Get returns the cached definitions of a store
func (c *DaypartCache) Get(ctx context.Context, storeID uint) ([]*models.DaypartDefinition, bool) {
	if !c.Enabled() {
		return nil, false
	}
	bs, err := c.rc.Get(ctx, c.key(storeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Uint("store_id", storeID).Msg("daypart cache read failed")
		}
		return nil, false
	}
	var defs []*models.DaypartDefinition
	if err := json.Unmarshal(bs, &defs); err != nil {
		c.logger.Warn().Err(err).Uint("store_id", storeID).Msg("daypart cache entry is corrupt")
		return nil, false
	}
	return defs, true
}

// Set stores the resolved definitions of a store
func (c *DaypartCache) Set(ctx context.Context, storeID uint, defs []*models.DaypartDefinition) {
	if !c.Enabled() {
		return
	}
	bs, err := json.Marshal(defs)
	if err != nil {
		c.logger.Warn().Err(err).Uint("store_id", storeID).Msg("daypart cache encode failed")
		return
	}
	if err := c.rc.Set(ctx, c.key(storeID), bs, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Uint("store_id", storeID).Msg("daypart cache write failed")
	}
}
