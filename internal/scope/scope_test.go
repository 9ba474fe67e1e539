package scope

import (
	"testing"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Superuser(t *testing.T) {
	user := &auth.AuthenticatedUser{ID: uuid.New(), Superuser: true, Active: true}

	sc := Resolve(user)

	assert.True(t, sc.Unrestricted())
	assert.False(t, sc.Empty())
}

func TestResolve_SuperAdminRole(t *testing.T) {
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleSuperAdmin},
	}

	sc := Resolve(user)

	assert.True(t, sc.Unrestricted())
}

func TestResolve_ReadOnlyIsUnrestricted(t *testing.T) {
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleReadOnly},
	}

	sc := Resolve(user)

	assert.True(t, sc.Unrestricted())
}

func TestResolve_DistrictVerifier(t *testing.T) {
	districtID := uuid.New()
	user := &auth.AuthenticatedUser{
		ID:         uuid.New(),
		Active:     true,
		Roles:      []string{rbac.RoleDistrictVerifier},
		DistrictID: &districtID,
	}

	sc := Resolve(user)

	assert.False(t, sc.Unrestricted())
	assert.False(t, sc.Empty())
	assert.Equal(t, rbac.ScopeDistrict, sc.Kind)
	assert.Equal(t, districtID, *sc.DistrictID)
}

func TestResolve_DepartmentAdmin(t *testing.T) {
	deptID := uuid.New()
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleDepartmentAdmin},
		DeptID: &deptID,
	}

	sc := Resolve(user)

	assert.Equal(t, rbac.ScopeDept, sc.Kind)
	assert.Equal(t, deptID, *sc.DeptID)
}

func TestResolve_PrecedenceSuperAdminWins(t *testing.T) {
	deptID := uuid.New()
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleDepartmentAdmin, rbac.RoleSuperAdmin},
		DeptID: &deptID,
	}

	sc := Resolve(user)

	assert.True(t, sc.Unrestricted())
}

func TestResolve_PrecedenceVerifierBeatsDeptAdmin(t *testing.T) {
	deptID := uuid.New()
	districtID := uuid.New()
	user := &auth.AuthenticatedUser{
		ID:         uuid.New(),
		Active:     true,
		Roles:      []string{rbac.RoleDepartmentAdmin, rbac.RoleDistrictVerifier},
		DeptID:     &deptID,
		DistrictID: &districtID,
	}

	sc := Resolve(user)

	assert.Equal(t, rbac.ScopeDistrict, sc.Kind)
	assert.Equal(t, districtID, *sc.DistrictID)
}

func TestResolve_MissingDistrictAnchorIsEmpty(t *testing.T) {
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleDistrictVerifier},
	}

	sc := Resolve(user)

	assert.True(t, sc.Empty())
	assert.False(t, sc.AllowsItem(uuid.New(), nil))
}

func TestResolve_MissingDeptAnchorIsEmpty(t *testing.T) {
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleDataEntryUser},
	}

	sc := Resolve(user)

	assert.True(t, sc.Empty())
}

func TestResolve_NoKnownRoleIsEmpty(t *testing.T) {
	user := &auth.AuthenticatedUser{
		ID:     uuid.New(),
		Active: true,
		Roles:  []string{rbac.RoleRBACManager},
	}

	sc := Resolve(user)

	assert.True(t, sc.Empty())
}

func TestAllowsItem_DistrictScope(t *testing.T) {
	districtID := uuid.New()
	otherDistrict := uuid.New()
	sc := Scope{Kind: rbac.ScopeDistrict, DistrictID: &districtID}

	assert.True(t, sc.AllowsItem(uuid.New(), &districtID))
	assert.False(t, sc.AllowsItem(uuid.New(), &otherDistrict))
	// items with no geography cannot match a district boundary
	assert.False(t, sc.AllowsItem(uuid.New(), nil))
}

func TestAllowsItem_DeptScope(t *testing.T) {
	deptID := uuid.New()
	sc := Scope{Kind: rbac.ScopeDept, DeptID: &deptID}

	assert.True(t, sc.AllowsItem(deptID, nil))
	assert.False(t, sc.AllowsItem(uuid.New(), nil))
}

func TestAllowsUser(t *testing.T) {
	deptID := uuid.New()
	districtID := uuid.New()

	deptScope := Scope{Kind: rbac.ScopeDept, DeptID: &deptID}
	assert.True(t, deptScope.AllowsUser(&deptID, nil))
	assert.False(t, deptScope.AllowsUser(nil, nil))

	districtScope := Scope{Kind: rbac.ScopeDistrict, DistrictID: &districtID}
	assert.True(t, districtScope.AllowsUser(nil, &districtID))
	assert.False(t, districtScope.AllowsUser(&deptID, nil))
}
