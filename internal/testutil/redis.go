package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/hibiken/asynq"
	rdb "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedis wraps a real Redis instance for auth state and queue tests
type TestRedis struct {
	container *redis.RedisContainer
	Config    config.RedisConfig
	Client    *rdb.Client
	Inspector *asynq.Inspector // (this is for inspecting the queue in tests)
}

// NewTestRedis starts a Redis container and returns clients bound to it
func NewTestRedis(t *testing.T) *TestRedis {
	ctx := context.Background()

	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithReuseByName("inventory-backend-test-redis"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30*time.Second),
				wait.ForListeningPort("6379/tcp").
					WithStartupTimeout(30*time.Second),
			),
		),
	)
	require.NoError(t, err, "Failed to start Redis container")

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to get redis connection string")

	cfg := config.RedisConfig{
		Addr:     endpoint,
		Password: "",
		DB:       0,
	}

	inspector := asynq.NewInspector(asynq.RedisClientOpt{
		Addr: endpoint,
	})

	client := rdb.NewClient(&rdb.Options{
		Addr: endpoint,
	})

	return &TestRedis{
		container: redisContainer,
		Config:    cfg,
		Client:    client,
		Inspector: inspector,
	}
}

// Cleanup flushes Redis between tests
func (tr *TestRedis) Cleanup(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tr.Client.FlushDB(ctx).Err(); err != nil {
		t.Logf("WARNING: failed to flush Redis between tests: %v", err)
	}
}

// Close releases the clients. The container itself is reused across runs.
func (tr *TestRedis) Close() {
	if tr.Inspector != nil {
		tr.Inspector.Close()
	}
	if tr.Client != nil {
		tr.Client.Close()
	}
}
