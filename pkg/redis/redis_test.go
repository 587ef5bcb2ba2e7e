package redis

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutAddressDisablesCache(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cache := New(Options{}, log)
	ctx := context.Background()

	require.NoError(t, cache.SetJSON(ctx, "report:1:categories", []int{1}, time.Minute))

	var dest []int
	hit, err := cache.GetJSON(ctx, "report:1:categories", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dest)
	assert.NoError(t, cache.DeleteByPrefix(ctx, "report:1:"))

	gen, err := cache.Incr(ctx, "report-gen:1")
	require.NoError(t, err)
	assert.Zero(t, gen)
	assert.NoError(t, cache.Close())
}

func TestClientUnreachable(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	cache := NewFromClient(client, log)

	_, err := cache.Incr(context.Background(), "report-gen:1")
	assert.Error(t, err)
	require.NoError(t, cache.Close())

	_, err = cache.Incr(context.Background(), "report-gen:1")
	assert.ErrorIs(t, err, redis.ErrClosed)
}
