package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithUser(user *AuthenticatedUser) context.Context {
	ctx := context.WithValue(context.Background(), UserIDKey, user.ID)
	return context.WithValue(ctx, UserClaimsKey, user)
}

func TestRequire_GrantsHeldPermission(t *testing.T) {
	authorizer := NewAuthorizer()
	user := &AuthenticatedUser{
		ID:          uuid.New(),
		Active:      true,
		Permissions: []string{"view_items", "create_items"},
	}

	got, err := authorizer.Require(ctxWithUser(user), "view_items")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRequire_DeniesMissingPermission(t *testing.T) {
	authorizer := NewAuthorizer()
	user := &AuthenticatedUser{
		ID:          uuid.New(),
		Active:      true,
		Permissions: []string{"view_items"},
	}

	_, err := authorizer.Require(ctxWithUser(user), "delete_items")

	var fe *ForbiddenError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "delete_items", fe.Permission)
}

func TestRequire_SuperuserBypassesChecks(t *testing.T) {
	authorizer := NewAuthorizer()
	user := &AuthenticatedUser{
		ID:        uuid.New(),
		Active:    true,
		Superuser: true,
	}

	_, err := authorizer.Require(ctxWithUser(user), "manage_roles")

	assert.NoError(t, err)
}

func TestRequire_NoPrincipal(t *testing.T) {
	authorizer := NewAuthorizer()

	_, err := authorizer.Require(context.Background(), "view_items")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRequire_InactivePrincipal(t *testing.T) {
	authorizer := NewAuthorizer()
	user := &AuthenticatedUser{
		ID:          uuid.New(),
		Active:      false,
		Permissions: []string{"view_items"},
	}

	_, err := authorizer.Require(ctxWithUser(user), "view_items")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRequireAuthenticated(t *testing.T) {
	authorizer := NewAuthorizer()

	_, err := authorizer.RequireAuthenticated(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	user := &AuthenticatedUser{ID: uuid.New(), Active: true}
	got, err := authorizer.RequireAuthenticated(ctxWithUser(user))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestHasPermission_UnionOfRoles(t *testing.T) {
	user := &AuthenticatedUser{
		ID:          uuid.New(),
		Active:      true,
		Roles:       []string{"Department Admin", "District Verifier"},
		Permissions: []string{"view_items", "verify_items", "create_borrow_records"},
	}

	assert.True(t, user.HasPermission("verify_items"))
	assert.True(t, user.HasPermission("create_borrow_records"))
	assert.False(t, user.HasPermission("manage_roles"))
	assert.True(t, user.HasRole("Department Admin"))
	assert.False(t, user.HasRole("Super Admin"))
}
