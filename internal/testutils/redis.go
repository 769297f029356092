package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// RedisURLEnv names the variable pointing integration tests at an existing
// Redis, e.g. redis://localhost:6379/15
const RedisURLEnv = "TEST_REDIS_URL"

// RedisClient returns a client for integration tests. When TEST_REDIS_URL is
// set the database it names is flushed before and after the test, otherwise
// a throwaway container is started.
func RedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	url := os.Getenv(RedisURLEnv)
	if url == "" {
		return StartRedisContainer(t)
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err, "parse %s", RedisURLEnv)

	client := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = client.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pingUntilReady(ctx, client); err != nil {
		t.Skipf("redis at %s not available: %v", opts.Addr, err)
	}

	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
	})
	return client
}

// pingUntilReady pings client until it answers or ctx is done
func pingUntilReady(ctx context.Context, client redis.UniversalClient) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		err := client.Ping(ctx).Err()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("redis not ready: %w", err)
		case <-ticker.C:
		}
	}
}
