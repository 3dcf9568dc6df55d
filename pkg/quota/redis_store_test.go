package quota_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/quota"
)

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	m, err := quota.NewMeter(quota.NewRedisStore(client), 3, time.Hour)
	require.NoError(t, err)

	_, err = m.Reserve(context.Background(), "k")
	assert.ErrorIs(t, err, quota.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, quota.ErrQuotaExhausted)
	err = m.Release(context.Background(), "k")
	assert.ErrorIs(t, err, quota.ErrStoreUnavailable)
}

// Runs against a live server when QUOTA_TEST_REDIS_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	url := os.Getenv("QUOTA_TEST_REDIS_URL")
	if url == "" {
		t.Skip("QUOTA_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := quota.NewRedisStore(client)
	key := "namekit:test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, key) })

	used, reset1, err := store.Increment(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, used)
	assert.WithinDuration(t, time.Now().Add(time.Minute), reset1, 2*time.Second)

	used, _, err = store.Increment(ctx, key, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, used)

	ttl, err := client.PTTL(ctx, key).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute, "second increment must not extend the window")

	require.NoError(t, store.Decrement(ctx, key))
	n, err := client.Get(ctx, key).Int()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	ttl, err = client.PTTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl, "decrement keeps the window")

	require.NoError(t, store.Decrement(ctx, key))
	require.NoError(t, store.Decrement(ctx, key))
	exists, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Zero(t, exists, "counter at zero is dropped, never negative")
}
