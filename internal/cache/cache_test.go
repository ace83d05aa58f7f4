package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCacheIsNoop(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	var out []int
	assert.False(t, c.GetJSON(ctx, "analytics:subjects", &out))
	c.SetJSON(ctx, "analytics:subjects", []int{1})
	c.DeletePrefix(ctx, "analytics:")
	assert.Nil(t, out)
}

func TestCacheWithoutClientIsNoop(t *testing.T) {
	ctx := context.Background()
	c := New(nil, 0)
	assert.Equal(t, defaultTTL, c.ttl)

	var out string
	c.SetJSON(ctx, "k", "v")
	assert.False(t, c.GetJSON(ctx, "k", &out))
}

func TestUnreachableRedisIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := New(client, time.Minute)

	ctx := context.Background()
	var out map[string]int
	c.SetJSON(ctx, "analytics:trend", map[string]int{"a": 1})
	assert.False(t, c.GetJSON(ctx, "analytics:trend", &out))
	c.DeletePrefix(ctx, "analytics:")
}

func newMiniredisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniredisCache(t)

	c.SetJSON(ctx, "analytics:0:trend", []int{1, 2})
	var out []int
	require.True(t, c.GetJSON(ctx, "analytics:0:trend", &out))
	assert.Equal(t, []int{1, 2}, out)
	assert.Equal(t, time.Minute, mr.TTL("analytics:0:trend"))

	c.SetJSON(ctx, "analytics:1:trend", []int{3})
	c.DeletePrefix(ctx, "analytics:0:")
	assert.False(t, c.GetJSON(ctx, "analytics:0:trend", &out))
	assert.True(t, mr.Exists("analytics:1:trend"))
}

func TestGeneration(t *testing.T) {
	ctx := context.Background()
	c, _ := newMiniredisCache(t)

	gen, ok := c.Generation(ctx, "analytics:gen")
	require.True(t, ok)
	assert.Zero(t, gen)

	gen, ok = c.Incr(ctx, "analytics:gen")
	require.True(t, ok)
	assert.Equal(t, int64(1), gen)

	gen, ok = c.Generation(ctx, "analytics:gen")
	require.True(t, ok)
	assert.Equal(t, int64(1), gen)

	var disabled *Cache
	_, ok = disabled.Generation(ctx, "analytics:gen")
	assert.False(t, ok)
	_, ok = disabled.Incr(ctx, "analytics:gen")
	assert.False(t, ok)
}
