package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

func TestMessageDeduplicator_TryClaim(t *testing.T) {
	client := setupTestRedis(t)
	d := NewMessageDeduplicator(client, 0)
	ctx := context.Background()

	ok, err := d.TryClaim(ctx, "<m1@example.com>")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.TryClaim(ctx, " <M1@example.com> ")
	require.NoError(t, err)
	assert.False(t, ok, "same id differing in case and spaces is a duplicate")

	ttl, err := client.TTL(ctx, "helpdesk:inbound:<m1@example.com>").Result()
	require.NoError(t, err)
	assert.InDelta(t, DefaultMessageDedupTTL.Seconds(), ttl.Seconds(), 5)
}

func TestMessageDeduplicator_Release(t *testing.T) {
	d := NewMessageDeduplicator(setupTestRedis(t), time.Minute)
	ctx := context.Background()

	ok, err := d.TryClaim(ctx, "<m2@example.com>")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.Release(ctx, "<m2@example.com>"))

	ok, err = d.TryClaim(ctx, "<m2@example.com>")
	require.NoError(t, err)
	assert.True(t, ok)
}
