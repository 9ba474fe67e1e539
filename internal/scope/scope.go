package scope

import (
	"fmt"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/google/uuid"
)

// Scope bounds what a principal may see. A scope is one of: unrestricted,
// district-bounded, department-bounded, or empty (no visibility).
type Scope struct {
	Kind       rbac.ScopeKind
	DeptID     *uuid.UUID
	DistrictID *uuid.UUID

	unrestricted bool
	empty        bool
}

// OutOfScopeError marks a single-object access outside the principal's scope.
// Callers render it as a not-found so out-of-scope IDs are indistinguishable
// from missing ones.
type OutOfScopeError struct {
	Resource string
	ID       uuid.UUID
}

func (e *OutOfScopeError) Error() string {
	return fmt.Sprintf("%s %s is outside the caller's scope", e.Resource, e.ID)
}

// Resolve computes the principal's scope from its roles. The role precedence
// list decides: the first listed role the principal holds wins. Superusers
// are unrestricted. A principal holding none of the listed roles sees
// nothing, as does one whose winning role needs a scope anchor the account
// does not carry.
func Resolve(user *auth.AuthenticatedUser) Scope {
	if user.Superuser {
		return Scope{unrestricted: true}
	}

	for _, rs := range rbac.RoleScopes {
		if !user.HasRole(rs.Role) {
			continue
		}
		switch rs.Kind {
		case rbac.ScopeNone:
			return Scope{unrestricted: true}
		case rbac.ScopeDistrict:
			if user.DistrictID == nil {
				return Scope{empty: true}
			}
			return Scope{Kind: rbac.ScopeDistrict, DistrictID: user.DistrictID}
		case rbac.ScopeDept:
			if user.DeptID == nil {
				return Scope{empty: true}
			}
			return Scope{Kind: rbac.ScopeDept, DeptID: user.DeptID}
		}
	}

	return Scope{empty: true}
}

// Unrestricted reports whether the scope imposes no data boundary.
func (s Scope) Unrestricted() bool {
	return s.unrestricted
}

// Empty reports whether the scope permits no visibility at all.
func (s Scope) Empty() bool {
	return s.empty
}

// AllowsItem reports whether an item with the given department and district
// falls inside the scope. Items with no district cannot satisfy a
// district-bounded scope.
func (s Scope) AllowsItem(deptID uuid.UUID, districtID *uuid.UUID) bool {
	if s.unrestricted {
		return true
	}
	if s.empty {
		return false
	}
	switch s.Kind {
	case rbac.ScopeDistrict:
		return districtID != nil && *districtID == *s.DistrictID
	case rbac.ScopeDept:
		return deptID == *s.DeptID
	}
	return false
}

// AllowsUser reports whether a user record with the given department and
// district falls inside the scope.
func (s Scope) AllowsUser(deptID, districtID *uuid.UUID) bool {
	if s.unrestricted {
		return true
	}
	if s.empty {
		return false
	}
	switch s.Kind {
	case rbac.ScopeDistrict:
		return districtID != nil && *districtID == *s.DistrictID
	case rbac.ScopeDept:
		return deptID != nil && *deptID == *s.DeptID
	}
	return false
}
