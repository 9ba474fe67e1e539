package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const permissionCacheTTL = 5 * time.Minute

type redisStore struct {
	client *redis.Client
}

func newRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client}
}

// Refresh token operations

func (r *redisStore) storeRefreshToken(ctx context.Context, hash, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenKey(hash), userID, ttl).Err()
}

func (r *redisStore) getRefreshToken(ctx context.Context, hash string) (string, error) {
	val, err := r.client.Get(ctx, refreshTokenKey(hash)).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisStore) deleteRefreshToken(ctx context.Context, hash string) error {
	return r.client.Del(ctx, refreshTokenKey(hash)).Err()
}

// Permission cache operations

func (r *redisStore) storePermissions(ctx context.Context, userID uuid.UUID, names []string) error {
	payload, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, permissionsKey(userID), payload, permissionCacheTTL).Err()
}

// getPermissions returns nil, nil on cache miss.
func (r *redisStore) getPermissions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	val, err := r.client.Get(ctx, permissionsKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	if err := json.Unmarshal([]byte(val), &names); err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *redisStore) invalidatePermissions(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, permissionsKey(userID)).Err()
}

func refreshTokenKey(hash string) string {
	return fmt.Sprintf("refresh:token:%s", hash)
}

func permissionsKey(userID uuid.UUID) string {
	return fmt.Sprintf("perms:user:%s", userID)
}
