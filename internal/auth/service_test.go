package auth_test

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sharedRedis *testutil.TestRedis
	sharedDB    *testutil.TestDatabase
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	t := &testing.T{}
	sharedRedis = testutil.NewTestRedis(t)
	sharedDB = testutil.NewTestDatabase(t)
	sharedDB.RunMigrations(t)

	code := m.Run()

	if sharedDB.Pool() != nil {
		sharedDB.Pool().Close()
	}
	sharedRedis.Close()

	os.Exit(code)
}

func newTestAuthService(t *testing.T) *auth.AuthService {
	t.Helper()
	jwtSvc, err := auth.NewJWTService([]byte("test-signing-key"), "test-issuer", 15*time.Minute)
	require.NoError(t, err)

	return auth.NewAuthService(sharedRedis.Client, jwtSvc, sharedDB.Queries(), config.JWTConfig{
		SigningKey:    "test-signing-key",
		Issuer:        "test-issuer",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAuthService_Login(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	t.Run("valid credentials return token pair", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("login@example.gov").Create()

		access, refresh, err := svc.Login(ctx, user.Email, testutil.DefaultPassword)

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Len(t, refresh, 64) // 32 bytes as hex
	})

	t.Run("wrong password returns ErrInvalidCredentials", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("wrongpw@example.gov").Create()

		_, _, err := svc.Login(ctx, user.Email, "not-the-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email returns ErrInvalidCredentials", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		svc := newTestAuthService(t)

		_, _, err := svc.Login(ctx, "ghost@example.gov", testutil.DefaultPassword)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("disabled account returns ErrAccountDisabled", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("disabled@example.gov").Inactive().Create()

		_, _, err := svc.Login(ctx, user.Email, testutil.DefaultPassword)
		assert.ErrorIs(t, err, auth.ErrAccountDisabled)
	})

	t.Run("disabled account with wrong password reports bad credentials", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("disabled-wrongpw@example.gov").Inactive().Create()

		_, _, err := svc.Login(ctx, user.Email, "not-the-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("refresh@example.gov").Create()

		_, refresh, err := svc.Login(ctx, user.Email, testutil.DefaultPassword)
		require.NoError(t, err)

		newAccess, newRefresh, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.NotEqual(t, refresh, newRefresh)
	})

	t.Run("used refresh token is invalidated", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("rotate@example.gov").Create()

		_, refresh, err := svc.Login(ctx, user.Email, testutil.DefaultPassword)
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, refresh)
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, auth.ErrRefreshInvalid)
	})

	t.Run("garbage refresh token returns ErrRefreshInvalid", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		svc := newTestAuthService(t)

		_, _, err := svc.Refresh(ctx, "not-a-real-token")
		assert.ErrorIs(t, err, auth.ErrRefreshInvalid)
	})
}

func TestAuthService_Logout(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		svc := newTestAuthService(t)

		user := sharedDB.NewUser(t).WithEmail("logout@example.gov").Create()

		_, refresh, err := svc.Login(ctx, user.Email, testutil.DefaultPassword)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, refresh))

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, auth.ErrRefreshInvalid)
	})

	t.Run("logout with unknown token is a no-op", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		svc := newTestAuthService(t)

		assert.NoError(t, svc.Logout(ctx, "unknown-token"))
	})
}
