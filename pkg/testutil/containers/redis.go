//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"polyglot/internal/platform/config"
	platformredis "polyglot/internal/platform/redis"
)

// RedisContainer is a throwaway Redis for the session and cart store. Client
// is opened the same way the sessioncart command opens it.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

func startRedis(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	url, err := container.ConnectionString(ctx)
	if err == nil {
		var client *redis.Client
		client, err = platformredis.Open(ctx, config.RedisConfig{URL: url, PoolSize: 8})
		if err == nil {
			return &RedisContainer{Container: container, URL: url, Client: client}
		}
	}
	_ = container.Terminate(ctx)
	t.Fatalf("connect to redis container: %v", err)
	return nil
}

// FlushAll clears every key between tests sharing the container.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
