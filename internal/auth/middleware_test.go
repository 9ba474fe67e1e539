package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authenticatorFixture struct {
	jwt     *auth.JWTService
	service *auth.AuthService
	authn   *auth.Authenticator
}

func newAuthenticatorFixture(t *testing.T) *authenticatorFixture {
	t.Helper()
	jwtSvc, err := auth.NewJWTService([]byte("test-signing-key"), "test-issuer", 15*time.Minute)
	require.NoError(t, err)

	service := auth.NewAuthService(sharedRedis.Client, jwtSvc, sharedDB.Queries(), config.JWTConfig{
		SigningKey:    "test-signing-key",
		Issuer:        "test-issuer",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	return &authenticatorFixture{
		jwt:     jwtSvc,
		service: service,
		authn:   auth.NewAuthenticator(jwtSvc, sharedDB.Queries(), service.Store()),
	}
}

func TestAuthenticator_Middleware(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	principalOf := func(fx *authenticatorFixture, header string) (*auth.AuthenticatedUser, bool) {
		var (
			principal *auth.AuthenticatedUser
			ok        bool
		)
		handler := fx.authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok = auth.GetAuthenticatedUser(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
		return principal, ok
	}

	t.Run("valid token attaches the principal", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		fx := newAuthenticatorFixture(t)

		user := sharedDB.NewUser(t).WithRole("Read-Only").Create()
		token, err := fx.jwt.GenerateToken(ctx, user.ID)
		require.NoError(t, err)

		principal, ok := principalOf(fx, "Bearer "+token)
		require.True(t, ok)
		assert.Equal(t, user.Email, principal.Email)
		assert.True(t, principal.HasPermission("view_items"))
		assert.False(t, principal.HasPermission("create_items"))
	})

	t.Run("missing header passes through unauthenticated", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		fx := newAuthenticatorFixture(t)

		_, ok := principalOf(fx, "")
		assert.False(t, ok)
	})

	t.Run("garbage token passes through unauthenticated", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		fx := newAuthenticatorFixture(t)

		_, ok := principalOf(fx, "Bearer not-a-token")
		assert.False(t, ok)
	})
}

func TestAuthenticator_PermissionCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	ctx := context.Background()

	t.Run("cached set is served until invalidated", func(t *testing.T) {
		sharedRedis.Cleanup(t)
		sharedDB.CleanupDatabase(t)
		fx := newAuthenticatorFixture(t)
		queries := sharedDB.Queries()

		user := sharedDB.NewUser(t).WithRole("Read-Only").Create()

		first, err := fx.authn.LoadUser(ctx, user.ID)
		require.NoError(t, err)
		assert.NotContains(t, first.Permissions, "create_items")

		role, err := queries.GetRoleByName(ctx, "Data Entry User")
		require.NoError(t, err)
		require.NoError(t, queries.AssignUserRole(ctx, db.AssignUserRoleParams{
			UserID: user.ID,
			RoleID: role.ID,
		}))

		// grant is invisible while the cached set lives
		stale, err := fx.authn.LoadUser(ctx, user.ID)
		require.NoError(t, err)
		assert.NotContains(t, stale.Permissions, "create_items")

		require.NoError(t, fx.service.InvalidatePermissions(ctx, user.ID))

		fresh, err := fx.authn.LoadUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Contains(t, fresh.Permissions, "create_items")
	})
}
