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

func setupTestClient(t *testing.T) *Client {
	mr := miniredis.RunT(t)
	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSetGetDelete(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", "v1", time.Minute))

	val, err := client.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", val)

	exists, err := client.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, client.Delete(ctx, "k1"))

	_, err = client.Get(ctx, "k1")
	assert.Equal(t, redis.Nil, err)
}

func TestDeletePattern(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "dashboard:stats", "a", time.Minute))
	require.NoError(t, client.Set(ctx, "dashboard:funnel", "b", time.Minute))
	require.NoError(t, client.Set(ctx, "other:key", "c", time.Minute))

	require.NoError(t, client.DeletePattern(ctx, "dashboard:*"))

	exists, err := client.Exists(ctx, "dashboard:stats")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "other:key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewClientBadURL(t *testing.T) {
	_, err := NewClient("not-a-url")
	assert.Error(t, err)
}
