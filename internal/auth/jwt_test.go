package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T, key, issuer string, expiry time.Duration) *JWTService {
	t.Helper()
	svc, err := NewJWTService([]byte(key), issuer, expiry)
	require.NoError(t, err)
	return svc
}

func TestJWTService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trip preserves the user id", func(t *testing.T) {
		svc := newJWTService(t, "test-signing-key", "inventory-backend", time.Hour)

		token, err := svc.GenerateToken(ctx, userID)
		require.NoError(t, err)
		assert.Contains(t, token, ".")

		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("rejects a token that is not a JWT", func(t *testing.T) {
		svc := newJWTService(t, "test-signing-key", "inventory-backend", time.Hour)

		_, err := svc.ValidateToken(ctx, "0011aabbccddeeff")
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		issuing := newJWTService(t, "key-one", "inventory-backend", time.Hour)
		validating := newJWTService(t, "key-two", "inventory-backend", time.Hour)

		token, err := issuing.GenerateToken(ctx, userID)
		require.NoError(t, err)

		_, err = validating.ValidateToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("rejects a token from a different issuer", func(t *testing.T) {
		issuing := newJWTService(t, "test-signing-key", "some-other-service", time.Hour)
		validating := newJWTService(t, "test-signing-key", "inventory-backend", time.Hour)

		token, err := issuing.GenerateToken(ctx, userID)
		require.NoError(t, err)

		_, err = validating.ValidateToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		svc := newJWTService(t, "test-signing-key", "inventory-backend", -time.Minute)

		token, err := svc.GenerateToken(ctx, userID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.Error(t, err)
	})
}
