package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when no principal is attached to the context.
var ErrUnauthenticated = errors.New("authentication required")

// ForbiddenError is returned when a principal lacks a required permission.
type ForbiddenError struct {
	Permission string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Permission)
}

// Authorizer answers permission questions about the request principal.
// Superusers pass every check.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Require returns the principal when it holds the named permission.
func (a *Authorizer) Require(ctx context.Context, permission string) (*AuthenticatedUser, error) {
	user, ok := GetAuthenticatedUser(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if !user.Active {
		return nil, ErrUnauthenticated
	}
	if !user.HasPermission(permission) {
		return nil, &ForbiddenError{Permission: permission}
	}
	return user, nil
}

// RequireAuthenticated returns the principal without any permission check.
func (a *Authorizer) RequireAuthenticated(ctx context.Context) (*AuthenticatedUser, error) {
	user, ok := GetAuthenticatedUser(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if !user.Active {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
