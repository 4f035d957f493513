package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirphl/signage-admin/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaypartCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rc.Close() }()

	cache := NewDaypartCache(rc, "test:", time.Minute, nil)
	ctx := context.Background()
	defs := []*models.DaypartDefinition{daypart(1, "breakfast", 10), daypart(2, "lunch", 20)}

	t.Run("MissThenHit", func(t *testing.T) {
		_, ok := cache.Get(ctx, 1)
		assert.False(t, ok)

		cache.Set(ctx, 1, defs)
		assert.True(t, mr.Exists("test:dayparts:store:1"))
		assert.Equal(t, time.Minute, mr.TTL("test:dayparts:store:1"))

		got, ok := cache.Get(ctx, 1)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "breakfast", got[0].DaypartName)
		assert.Equal(t, uint(2), got[1].ID)
	})

	t.Run("Expiry", func(t *testing.T) {
		cache.Set(ctx, 2, defs)
		mr.FastForward(2 * time.Minute)
		_, ok := cache.Get(ctx, 2)
		assert.False(t, ok)
	})

	t.Run("RedisDownIsAMiss", func(t *testing.T) {
		down := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: down.Addr(), MaxRetries: -1})
		defer func() { _ = client.Close() }()
		down.Close()

		c := NewDaypartCache(client, "test:", time.Minute, nil)
		c.Set(ctx, 1, defs)
		_, ok := c.Get(ctx, 1)
		assert.False(t, ok)
	})

	t.Run("Disabled", func(t *testing.T) {
		var nilCache *DaypartCache
		assert.False(t, nilCache.Enabled())
		_, ok := nilCache.Get(ctx, 1)
		assert.False(t, ok)

		disabled := NewDaypartCache(nil, "test:", time.Minute, nil)
		assert.False(t, disabled.Enabled())
		disabled.Set(ctx, 1, defs)
		_, ok = disabled.Get(ctx, 1)
		assert.False(t, ok)
	})
}
